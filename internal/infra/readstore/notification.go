package readstore

import (
	"context"
	"log/slog"

	"manuara-reservas/internal/infra"
	"manuara-reservas/internal/infra/db"
	"manuara-reservas/internal/usecase/queries"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

func (s *NotificationReadStore) List(ctx context.Context, unreadOnly bool, limit int) ([]*queries.NotificationView, error) {
	query := `
		SELECT id, kind, message, reservation_id, read_at, created_at
		FROM notifications`
	if unreadOnly {
		query += " WHERE read_at IS NULL"
	}
	query += " ORDER BY created_at DESC LIMIT $1"

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.ClassifyPgError(err), "failed to list notifications", err)
	}
	defer rows.Close()

	var out []*queries.NotificationView
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.Kind, &v.Message, &v.ReservationID, &v.ReadAt, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan notification", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to iterate notifications", err)
	}
	return out, nil
}
