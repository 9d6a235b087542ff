// Package redislock распределенная блокировка на Redis для воркера
// напоминаний: не дает двум экземплярам воркера сканировать базу одновременно.
package redislock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClient создает клиент Redis и проверяет соединение
func NewClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redislock: ping failed: %w", err)
	}

	return client, nil
}
