package repository

import (
	"context"
	"log/slog"

	"manuara-reservas/internal/infra"
	"manuara-reservas/internal/infra/db"
	"manuara-reservas/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) shared.NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) Create(ctx context.Context, kind, message string, reservationID uuid.UUID) error {
	const query = `
		INSERT INTO notifications (id, kind, message, reservation_id)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, uuid.New(), kind, message, reservationID)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.ClassifyPgError(err), "failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE notifications SET read_at = now()
		WHERE id = $1 AND read_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.ClassifyPgError(err), "failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "notification not found or already read", nil)
	}
	return nil
}
