package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationView struct {
	ID            uuid.UUID
	Kind          string
	Message       string
	ReservationID uuid.UUID
	ReadAt        *time.Time
	CreatedAt     time.Time
}

type NotificationReadStore interface {
	List(ctx context.Context, unreadOnly bool, limit int) ([]*NotificationView, error)
}

type NotificationQueries interface {
	List(ctx context.Context, unreadOnly bool, limit int) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

const defaultNotificationLimit = 50

func (q *notificationQueriesImpl) List(ctx context.Context, unreadOnly bool, limit int) ([]*NotificationView, error) {
	if limit <= 0 || limit > defaultNotificationLimit {
		limit = defaultNotificationLimit
	}
	return q.store.List(ctx, unreadOnly, limit)
}
