package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"service-livraison/internal/domain"
)

const assignmentIndexKey = "assignments"

// RedisAssignmentStore keeps assignments in a Redis hash per order plus a
// set indexing the claimed order ids. It is the alternate backend for
// deployments without Postgres.
type RedisAssignmentStore struct {
	rdb *redis.Client
}

// NewRedisAssignmentStore creates a store over an already configured client.
func NewRedisAssignmentStore(rdb *redis.Client) *RedisAssignmentStore {
	return &RedisAssignmentStore{rdb: rdb}
}

func assignmentKey(orderID int64) string {
	return fmt.Sprintf("assignment:%d", orderID)
}

// Put stores (or replaces) the driver claim for an order.
func (s *RedisAssignmentStore) Put(ctx context.Context, a domain.Assignment) error {
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, assignmentKey(a.OrderID), map[string]any{
		"driver_id":    a.Driver.ID,
		"driver_name":  a.Driver.Name,
		"driver_email": a.Driver.Email,
		"driver_phone": a.Driver.Phone,
		"delivery_id":  a.DeliveryID,
	})
	pipe.SAdd(ctx, assignmentIndexKey, a.OrderID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put assignment %d: %w", a.OrderID, err)
	}
	return nil
}

// PutDeliveryID records the backend-assigned delivery record id for an
// already claimed order.
func (s *RedisAssignmentStore) PutDeliveryID(ctx context.Context, orderID, deliveryID int64) error {
	n, err := s.rdb.Exists(ctx, assignmentKey(orderID)).Result()
	if err != nil {
		return fmt.Errorf("put delivery id for order %d: %w", orderID, err)
	}
	if n == 0 {
		return fmt.Errorf("assignment for order %d not found", orderID)
	}
	if err := s.rdb.HSet(ctx, assignmentKey(orderID), "delivery_id", deliveryID).Err(); err != nil {
		return fmt.Errorf("put delivery id for order %d: %w", orderID, err)
	}
	return nil
}

// Get fetches the assignment for an order. Returns nil when the order has
// never been claimed.
func (s *RedisAssignmentStore) Get(ctx context.Context, orderID int64) (*domain.Assignment, error) {
	fields, err := s.rdb.HGetAll(ctx, assignmentKey(orderID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment %d: %w", orderID, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	a, err := assignmentFromHash(orderID, fields)
	if err != nil {
		return nil, fmt.Errorf("get assignment %d: %w", orderID, err)
	}
	return &a, nil
}

// All fetches every stored assignment. Used to recover claims on startup.
func (s *RedisAssignmentStore) All(ctx context.Context) ([]domain.Assignment, error) {
	ids, err := s.rdb.SMembers(ctx, assignmentIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	var out []domain.Assignment
	for _, raw := range ids {
		orderID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("list assignments: bad index entry %q: %w", raw, err)
		}
		a, err := s.Get(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if a == nil {
			// Index entry without a hash: drop the stale member.
			s.rdb.SRem(ctx, assignmentIndexKey, orderID)
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

// Delete removes the assignment for an order. Deleting an absent entry is
// not an error: release paths are idempotent.
func (s *RedisAssignmentStore) Delete(ctx context.Context, orderID int64) error {
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, assignmentKey(orderID))
	pipe.SRem(ctx, assignmentIndexKey, orderID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete assignment %d: %w", orderID, err)
	}
	return nil
}

func assignmentFromHash(orderID int64, fields map[string]string) (domain.Assignment, error) {
	driverID, err := strconv.ParseInt(fields["driver_id"], 10, 64)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("bad driver_id %q: %w", fields["driver_id"], err)
	}
	deliveryID, err := strconv.ParseInt(fields["delivery_id"], 10, 64)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("bad delivery_id %q: %w", fields["delivery_id"], err)
	}
	return domain.Assignment{
		OrderID: orderID,
		Driver: domain.Driver{
			ID:    driverID,
			Name:  fields["driver_name"],
			Email: fields["driver_email"],
			Phone: fields["driver_phone"],
		},
		DeliveryID: deliveryID,
	}, nil
}
