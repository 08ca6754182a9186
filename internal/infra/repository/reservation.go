package repository

import (
	"context"
	"log/slog"

	"manuara-reservas/internal/domain/reservation"
	"manuara-reservas/internal/infra"
	"manuara-reservas/internal/infra/db"
	"manuara-reservas/internal/usecase/shared"
)

const insertReservationSQL = `
INSERT INTO reservations (
	id, cabin_id, check_in, check_out, status,
	guest_name, guest_count, contact_email, contact_phone, note,
	total_price_cents, amount_paid_cents, checked_in_at, checked_out_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

const updateReservationSQL = `
UPDATE reservations SET
	cabin_id = $2, check_in = $3, check_out = $4, status = $5,
	guest_name = $6, guest_count = $7, contact_email = $8,
	contact_phone = $9, note = $10, total_price_cents = $11,
	amount_paid_cents = $12, checked_in_at = $13, checked_out_at = $14,
	updated_at = now()
WHERE id = $1`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) shared.ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, insertReservationSQL, reservationArgs(res)...)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.ClassifyPgError(err), "failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, updateReservationSQL, reservationArgs(res)...)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.ClassifyPgError(err), "failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}

func reservationArgs(res *reservation.Reservation) []any {
	return []any{
		res.ID(),
		string(res.CabinID()),
		res.Stay().CheckIn().Time(),
		res.Stay().CheckOut().Time(),
		string(res.Status()),
		res.GuestName(),
		res.GuestCount(),
		res.ContactEmail(),
		res.ContactPhone(),
		res.Note(),
		res.TotalPriceCents(),
		res.AmountPaidCents(),
		res.CheckedInAt(),
		res.CheckedOutAt(),
	}
}
