package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/dosadiner/pkg/database"
	"github.com/ghuser/dosadiner/services/ordering/domain"
	"github.com/ghuser/dosadiner/services/ordering/domain/models"
)

// PostgreSQL error codes checked by the repositories.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// CustomerRepository implements repositories.CustomerRepository against PostgreSQL.
type CustomerRepository struct {
	db *database.Database
}

// NewCustomerRepository returns a CustomerRepository backed by the given pool.
func NewCustomerRepository(db *database.Database) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Save inserts a new customer and assigns the generated ID.
// Returns ErrDuplicateContact on phone/email unique constraint violations.
func (r *CustomerRepository) Save(ctx context.Context, c *models.Customer) error {
	err := r.db.DB().QueryRowContext(ctx,
		`INSERT INTO customers (name, phone, email, address, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		c.Name, c.Phone, c.Email, c.Address, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateContact
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID retrieves a customer by ID. Returns ErrCustomerNotFound if absent.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	var c models.Customer
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, phone, email, address, created_at
		 FROM customers WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("query customer: %w", err)
	}
	return &c, nil
}

// List retrieves all customers in insertion order.
func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, phone, email, address, created_at
		 FROM customers ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var customers []*models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}

// Update replaces all mutable customer fields. Returns ErrCustomerNotFound
// if the id is absent and ErrDuplicateContact on uniqueness conflicts.
func (r *CustomerRepository) Update(ctx context.Context, c *models.Customer) error {
	res, err := r.db.DB().ExecContext(ctx,
		`UPDATE customers SET name = $2, phone = $3, email = $4, address = $5
		 WHERE id = $1`,
		c.ID, c.Name, c.Phone, c.Email, c.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateContact
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return requireRowAffected(res, domain.ErrCustomerNotFound)
}

// Delete removes a customer. The delete policy is reject-on-conflict:
// a customer still referenced by orders yields ErrInUse.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	return requireRowAffected(res, domain.ErrCustomerNotFound)
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// isForeignKeyViolation reports whether err is a PostgreSQL FK constraint error.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// requireRowAffected converts a zero-row Exec result into notFound.
func requireRowAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
