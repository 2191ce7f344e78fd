package memory

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

// NotificationRepo almacén de notificaciones en memoria, en orden de inserción.
type NotificationRepo struct {
	mu    sync.RWMutex
	items []entity.Notification
}

func NewNotificationRepository() *NotificationRepo { return &NotificationRepo{} }

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

func (r *NotificationRepo) Save(_ context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *n)
	return nil
}

func (r *NotificationRepo) Stream(ctx context.Context) iter.Seq2[*entity.Notification, error] {
	r.mu.RLock()
	snapshot := slices.Clone(r.items)
	r.mu.RUnlock()
	return func(yield func(*entity.Notification, error) bool) {
		for i := range snapshot {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			if !yield(&snapshot[i], nil) {
				return
			}
		}
	}
}
