package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant_tabs/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// SessionRedisRepository keeps the per-table session slots in Redis with a
// TTL standing in for session expiry.
//
// Keys:
//   - activeOrderId_table_<tableId>  (pointer, plain GET/SET)
//   - pendingOrderId_table_<tableId> (handoff, GETDEL for read-once-and-clear)
//
// Writes are last-writer-wins: two browser tabs on the same table are not
// kept consistent, which is an accepted limitation.

type SessionRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ISessionStore = (*SessionRedisRepository)(nil)

func NewSessionRedisRepository(client *redis.Client, ttl time.Duration) *SessionRedisRepository {
	return &SessionRedisRepository{client: client, ttl: ttl}
}

func activeOrderKey(tableID string) string {
	return fmt.Sprintf("activeOrderId_table_%s", tableID)
}

func pendingOrderKey(tableID string) string {
	return fmt.Sprintf("pendingOrderId_table_%s", tableID)
}

func (r *SessionRedisRepository) GetActiveOrderID(ctx context.Context, tableID string) (string, error) {
	v, err := r.client.Get(ctx, activeOrderKey(tableID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

func (r *SessionRedisRepository) SetActiveOrderID(ctx context.Context, tableID, orderID string) error {
	return r.client.Set(ctx, activeOrderKey(tableID), orderID, r.ttl).Err()
}

func (r *SessionRedisRepository) SetPendingOrderID(ctx context.Context, tableID, orderID string) error {
	return r.client.Set(ctx, pendingOrderKey(tableID), orderID, r.ttl).Err()
}

func (r *SessionRedisRepository) ConsumePendingOrderID(ctx context.Context, tableID string) (string, error) {
	v, err := r.client.GetDel(ctx, pendingOrderKey(tableID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}
