package readstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"manuara-reservas/internal/domain/cabin"
	"manuara-reservas/internal/domain/reservation"
	"manuara-reservas/internal/infra"
	"manuara-reservas/internal/infra/db"
	"manuara-reservas/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationColumns = `
	id, cabin_id, check_in, check_out, status,
	guest_name, guest_count, contact_email, contact_phone, note,
	total_price_cents, amount_paid_cents, checked_in_at, checked_out_at,
	created_at, updated_at`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

type reservationRow struct {
	ID              uuid.UUID
	CabinID         string
	CheckIn         time.Time
	CheckOut        time.Time
	Status          string
	GuestName       string
	GuestCount      int
	ContactEmail    string
	ContactPhone    string
	Note            string
	TotalPriceCents int64
	AmountPaidCents int64
	CheckedInAt     *time.Time
	CheckedOutAt    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func scanReservation(row pgx.Row) (*reservationRow, error) {
	var r reservationRow
	err := row.Scan(
		&r.ID, &r.CabinID, &r.CheckIn, &r.CheckOut, &r.Status,
		&r.GuestName, &r.GuestCount, &r.ContactEmail, &r.ContactPhone, &r.Note,
		&r.TotalPriceCents, &r.AmountPaidCents, &r.CheckedInAt, &r.CheckedOutAt,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *reservationRow) toView() *queries.ReservationView {
	cabinID := cabin.ID(r.CabinID)
	stay := r.stay()
	view := &queries.ReservationView{
		ID:              r.ID,
		CabinID:         r.CabinID,
		CabinLabel:      cabinID.DisplayLabel(),
		CheckIn:         stay.CheckIn().String(),
		CheckOut:        stay.CheckOut().String(),
		Nights:          stay.Nights(),
		Status:          r.Status,
		GuestName:       r.GuestName,
		GuestCount:      r.GuestCount,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		Note:            r.Note,
		TotalPriceCents: r.TotalPriceCents,
		AmountPaidCents: r.AmountPaidCents,
		CheckedInAt:     r.CheckedInAt,
		CheckedOutAt:    r.CheckedOutAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	view.PaymentStatus = string(r.toEntity().PaymentStatus())
	return view
}

func (r *reservationRow) stay() reservation.StayRange {
	stay, err := reservation.NewStayRange(
		reservation.DateOf(r.CheckIn),
		reservation.DateOf(r.CheckOut),
	)
	if err != nil {
		// The check constraint on the table makes this unreachable for
		// stored rows.
		panic(fmt.Sprintf("stored reservation %s has invalid range: %v", r.ID, err))
	}
	return stay
}

func (r *reservationRow) toEntity() *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID,
		cabin.ID(r.CabinID),
		r.stay(),
		reservation.Status(r.Status),
		r.GuestName,
		r.GuestCount,
		r.ContactEmail,
		r.ContactPhone,
		r.Note,
		r.TotalPriceCents,
		r.AmountPaidCents,
		r.CheckedInAt,
		r.CheckedOutAt,
		r.CreatedAt,
		r.UpdatedAt,
	)
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := `SELECT` + reservationColumns + ` FROM reservations WHERE id = $1`

	row, err := scanReservation(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.ClassifyPgError(err), "failed to find reservation", err)
	}
	return row.toView(), nil
}

// FindEntityByID rehydrates the domain entity for command-side loads.
func (s *ReservationReadStore) FindEntityByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	query := `SELECT` + reservationColumns + ` FROM reservations WHERE id = $1`

	row, err := scanReservation(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.ClassifyPgError(err), "failed to find reservation", err)
	}
	return row.toEntity(), nil
}

func (s *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	query := `SELECT` + reservationColumns + ` FROM reservations`

	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CabinID != nil {
		conds = append(conds, "cabin_id = "+arg(string(*filter.CabinID)))
	}
	if filter.Status != nil {
		conds = append(conds, "status = "+arg(string(*filter.Status)))
	}
	// Window overlap uses the same half-open rule as the engine: a stay
	// belongs to [from, to) when check_in < to and check_out > from.
	if filter.From != nil {
		conds = append(conds, "check_out > "+arg(filter.From.Time()))
	}
	if filter.To != nil {
		conds = append(conds, "check_in < "+arg(filter.To.Time()))
	}
	if filter.ArrivalsOn != nil {
		conds = append(conds, "check_in = "+arg(filter.ArrivalsOn.Time()))
	}
	if filter.DeparturesOn != nil {
		conds = append(conds, "check_out = "+arg(filter.DeparturesOn.Time()))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY check_in, cabin_id, created_at"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.ClassifyPgError(err), "failed to list reservations", err)
	}
	defer rows.Close()

	var out []*queries.ReservationView
	for rows.Next() {
		row, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan reservation", err)
		}
		out = append(out, row.toView())
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to iterate reservations", err)
	}
	return out, nil
}

func (s *ReservationReadStore) ActiveSnapshots(ctx context.Context) ([]reservation.Snapshot, error) {
	return s.activeSnapshots(ctx, nil)
}

func (s *ReservationReadStore) ActiveSnapshotsByCabin(ctx context.Context, cabinID cabin.ID) ([]reservation.Snapshot, error) {
	return s.activeSnapshots(ctx, &cabinID)
}

func (s *ReservationReadStore) activeSnapshots(ctx context.Context, cabinID *cabin.ID) ([]reservation.Snapshot, error) {
	query := `
		SELECT id, cabin_id, check_in, check_out, status
		FROM reservations
		WHERE status <> 'cancelled'`
	var args []any
	if cabinID != nil {
		query += " AND cabin_id = $1"
		args = append(args, string(*cabinID))
	}
	query += " ORDER BY check_in"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.ClassifyPgError(err), "failed to load reservation snapshot", err)
	}
	defer rows.Close()

	var out []reservation.Snapshot
	for rows.Next() {
		var (
			id                uuid.UUID
			cabinStr, status  string
			checkIn, checkOut time.Time
		)
		if err := rows.Scan(&id, &cabinStr, &checkIn, &checkOut, &status); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan snapshot row", err)
		}
		stay, err := reservation.NewStayRange(reservation.DateOf(checkIn), reservation.DateOf(checkOut))
		if err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "stored reservation has invalid range", err)
		}
		out = append(out, reservation.Snapshot{
			ID:      id,
			CabinID: cabin.ID(cabinStr),
			Stay:    stay,
			Status:  reservation.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to iterate snapshot rows", err)
	}
	return out, nil
}
