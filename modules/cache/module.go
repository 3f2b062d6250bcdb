package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/example/taskboard/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/redis/go-redis/v9"
)

// Module provides the task list cache as a mono module. It consumes task
// lifecycle events and invalidates the owning user's list entry.
type Module struct {
	cache     *Cache
	listCache *TaskListCache
	redisAddr string
	prefix    string
	ttl       time.Duration
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.EventConsumerModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new cache module.
func NewModule(redisAddr, prefix string, ttl time.Duration) *Module {
	return &Module{
		redisAddr: redisAddr,
		prefix:    prefix,
		ttl:       ttl,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "cache"
}

// TaskListCache returns the list cache port, wired into the todo module from
// main after start.
func (m *Module) TaskListCache() *TaskListCache {
	return m.listCache
}

// RegisterEventConsumers subscribes to the task lifecycle events.
func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskUpdatedV1, m.handleTaskUpdated, m); err != nil {
		return fmt.Errorf("failed to register TaskUpdated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, m.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}

	log.Printf("[cache] Registered event consumers: TaskCreated, TaskUpdated, TaskDeleted")
	return nil
}

func (m *Module) handleTaskCreated(ctx context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	m.listCache.Invalidate(ctx, event.UserID)
	return nil
}

func (m *Module) handleTaskUpdated(ctx context.Context, event events.TaskUpdatedEvent, _ *mono.Msg) error {
	m.listCache.Invalidate(ctx, event.UserID)
	return nil
}

func (m *Module) handleTaskDeleted(ctx context.Context, event events.TaskDeletedEvent, _ *mono.Msg) error {
	m.listCache.Invalidate(ctx, event.UserID)
	return nil
}

// Start connects to Redis. An unreachable Redis is logged, not fatal: every
// cache operation degrades to a miss.
func (m *Module) Start(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr: m.redisAddr,
	})

	m.cache = New(client, m.prefix, m.ttl)
	m.listCache = NewTaskListCache(m.cache)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := m.cache.Ping(pingCtx); err != nil {
		log.Printf("[cache] Warning: Redis unreachable at %s, operating as pass-through: %v", m.redisAddr, err)
	} else {
		log.Printf("[cache] Module started (redis: %s, ttl: %s)", m.redisAddr, m.ttl)
	}
	return nil
}

// Stop closes the Redis connection.
func (m *Module) Stop(_ context.Context) error {
	if m.cache != nil {
		if err := m.cache.Close(); err != nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
	}
	log.Println("[cache] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.cache == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "cache not initialized",
		}
	}

	if err := m.cache.Ping(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("redis ping failed: %v", err),
		}
	}

	stats := m.cache.GetStats()
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"redis":    m.redisAddr,
			"hit_rate": stats.HitRate,
		},
	}
}
