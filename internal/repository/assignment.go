package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-livraison/internal/domain"
)

// AssignmentRepo is the pgx-backed assignment store. Every write is a
// committed statement, so an assignment written just before a crash is
// visible again after restart.
type AssignmentRepo struct {
	db *pgxpool.Pool
}

// NewAssignmentRepo creates a new AssignmentRepo.
func NewAssignmentRepo(db *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// Put stores (or replaces) the driver claim for an order.
func (r *AssignmentRepo) Put(ctx context.Context, a domain.Assignment) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO assignments (order_id, driver_id, driver_name, driver_email, driver_phone, delivery_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (order_id) DO UPDATE
        SET driver_id    = EXCLUDED.driver_id,
            driver_name  = EXCLUDED.driver_name,
            driver_email = EXCLUDED.driver_email,
            driver_phone = EXCLUDED.driver_phone,
            delivery_id  = EXCLUDED.delivery_id,
            updated_at   = now()
    `, a.OrderID, a.Driver.ID, a.Driver.Name, a.Driver.Email, a.Driver.Phone, a.DeliveryID)
	if err != nil {
		return fmt.Errorf("put assignment %d: %w", a.OrderID, err)
	}
	return nil
}

// PutDeliveryID records the backend-assigned delivery record id for an
// already claimed order.
func (r *AssignmentRepo) PutDeliveryID(ctx context.Context, orderID, deliveryID int64) error {
	ct, err := r.db.Exec(ctx, `
        UPDATE assignments
        SET delivery_id = $2, updated_at = now()
        WHERE order_id = $1
    `, orderID, deliveryID)
	if err != nil {
		return fmt.Errorf("put delivery id for order %d: %w", orderID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("assignment for order %d not found", orderID)
	}
	return nil
}

// Get fetches the assignment for an order. Returns nil when the order has
// never been claimed.
func (r *AssignmentRepo) Get(ctx context.Context, orderID int64) (*domain.Assignment, error) {
	row := r.db.QueryRow(ctx, `
        SELECT order_id, driver_id, driver_name, driver_email, driver_phone, delivery_id
        FROM assignments
        WHERE order_id = $1
    `, orderID)

	var a domain.Assignment
	err := row.Scan(&a.OrderID, &a.Driver.ID, &a.Driver.Name, &a.Driver.Email, &a.Driver.Phone, &a.DeliveryID)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment %d: %w", orderID, err)
	}
	return &a, nil
}

// All fetches every stored assignment. Used to recover claims on startup.
func (r *AssignmentRepo) All(ctx context.Context) ([]domain.Assignment, error) {
	rows, err := r.db.Query(ctx, `
        SELECT order_id, driver_id, driver_name, driver_email, driver_phone, delivery_id
        FROM assignments
        ORDER BY order_id
    `)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.OrderID, &a.Driver.ID, &a.Driver.Name, &a.Driver.Email, &a.Driver.Phone, &a.DeliveryID); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return out, nil
}

// Delete removes the assignment for an order. Deleting an absent row is not
// an error: release paths are idempotent.
func (r *AssignmentRepo) Delete(ctx context.Context, orderID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete assignment %d: %w", orderID, err)
	}
	return nil
}
