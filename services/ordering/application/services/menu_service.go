package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/dosadiner/pkg/cache"
	"github.com/ghuser/dosadiner/pkg/logger"
	"github.com/ghuser/dosadiner/services/ordering/domain"
	"github.com/ghuser/dosadiner/services/ordering/domain/models"
	"github.com/ghuser/dosadiner/services/ordering/domain/repositories"
)

// MenuService orchestrates menu item CRUD. Reads are served from the Redis
// cache when available; writes invalidate it. Event publishing is handled by
// the repository layer inside the insert transaction.
type MenuService struct {
	repo  repositories.MenuItemRepository
	cache *pkgcache.MenuCache
	log   logger.Logger
}

// NewMenuService returns a MenuService wired with the given repository and
// cache. Pass a nil cache to serve all reads from Postgres.
func NewMenuService(repo repositories.MenuItemRepository, menuCache *pkgcache.MenuCache, log logger.Logger) *MenuService {
	return &MenuService{repo: repo, cache: menuCache, log: log}
}

// Create validates and persists a new menu item.
func (s *MenuService) Create(ctx context.Context, name string, price float64, description *string, category string) (*models.MenuItem, error) {
	item, err := models.NewMenuItem(name, price, description, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save menu item: %w", err)
	}
	return item, nil
}

// Get retrieves a menu item using a read-through cache pattern:
//  1. Check the Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *MenuService) Get(ctx context.Context, id int64) (*models.MenuItem, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return &models.MenuItem{
				ID:          cached.ID,
				Name:        cached.Name,
				Price:       cached.Price,
				Description: cached.Description,
				Category:    cached.Category,
				CreatedAt:   cached.CreatedAt,
			}, nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "menu cache read failed, falling back to database",
				"item_id", id, "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedMenuItem{
				ID:          item.ID,
				Name:        item.Name,
				Price:       item.Price,
				Description: item.Description,
				Category:    item.Category,
				CreatedAt:   item.CreatedAt,
			})
		}()
	}

	return item, nil
}

// List returns all menu items in insertion order, straight from Postgres.
func (s *MenuService) List(ctx context.Context) ([]*models.MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

// Update replaces all mutable fields, re-validating the same constraints as
// Create, and invalidates the cache entry. Existing order lines keep their
// unit price snapshots.
func (s *MenuService) Update(ctx context.Context, id int64, name string, price float64, description *string, category string) (*models.MenuItem, error) {
	item, err := models.NewMenuItem(name, price, description, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	item.ID = id
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes a menu item and invalidates its cache entry. Items still
// referenced by order lines are rejected with ErrInUse.
func (s *MenuService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}
