package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"restaurant_tabs/internal/domain/entities"
	"restaurant_tabs/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// MenuCartRedisRepository reads the external menu-browsing cart the menu
// service maintains in Redis. The tabs service drains it: Items then Clear.
// It never writes items into it.

type MenuCartRedisRepository struct {
	client *redis.Client
}

var _ interfaces.IMenuCartRepository = (*MenuCartRedisRepository)(nil)

func NewMenuCartRedisRepository(client *redis.Client) *MenuCartRedisRepository {
	return &MenuCartRedisRepository{client: client}
}

func menuCartKey(tableID string) string {
	return fmt.Sprintf("menuCart_table_%s", tableID)
}

func (r *MenuCartRedisRepository) Items(ctx context.Context, tableID string) ([]entities.MenuCartItem, error) {
	raw, err := r.client.Get(ctx, menuCartKey(tableID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []entities.MenuCartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuCartRedisRepository) Clear(ctx context.Context, tableID string) error {
	return r.client.Del(ctx, menuCartKey(tableID)).Err()
}
