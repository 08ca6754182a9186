//go:build unit

package reservation_test

import (
	"testing"

	"manuara-reservas/internal/domain/cabin"
	"manuara-reservas/internal/domain/reservation"
	"manuara-reservas/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStay(t *testing.T, checkIn, checkOut string) reservation.StayRange {
	t.Helper()
	stay, err := reservation.ParseStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func mustDate(t *testing.T, s string) reservation.Date {
	t.Helper()
	d, err := reservation.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a        [2]string
		b        [2]string
		overlaps bool
	}{
		{name: "strict overlap", a: [2]string{"2025-08-20", "2025-08-25"}, b: [2]string{"2025-08-22", "2025-08-24"}, overlaps: true},
		{name: "partial overlap at start", a: [2]string{"2025-08-20", "2025-08-25"}, b: [2]string{"2025-08-18", "2025-08-21"}, overlaps: true},
		{name: "identical ranges", a: [2]string{"2025-08-20", "2025-08-25"}, b: [2]string{"2025-08-20", "2025-08-25"}, overlaps: true},
		{name: "half-open boundary touch", a: [2]string{"2025-08-20", "2025-08-25"}, b: [2]string{"2025-08-25", "2025-08-28"}, overlaps: false},
		{name: "disjoint", a: [2]string{"2025-08-20", "2025-08-22"}, b: [2]string{"2025-08-26", "2025-08-28"}, overlaps: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := mustStay(t, c.a[0], c.a[1])
			b := mustStay(t, c.b[0], c.b[1])

			assert.Equal(t, c.overlaps, a.Overlaps(b))
			// symmetry
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
		})
	}
}

func TestIsAvailable(t *testing.T) {
	existing := builder.NewReservationBuilder().
		WithCabin(cabin.Small).
		WithStay("2025-08-01", "2025-08-05").
		BuildSnapshot()
	snapshot := []reservation.Snapshot{existing}

	t.Run("free range after checkout day", func(t *testing.T) {
		stay := mustStay(t, "2025-08-05", "2025-08-10")
		assert.True(t, reservation.IsAvailable(snapshot, cabin.Small, stay, uuid.Nil))
	})

	t.Run("overlapping range conflicts", func(t *testing.T) {
		stay := mustStay(t, "2025-08-04", "2025-08-06")
		assert.False(t, reservation.IsAvailable(snapshot, cabin.Small, stay, uuid.Nil))
	})

	t.Run("other cabin unaffected", func(t *testing.T) {
		stay := mustStay(t, "2025-08-01", "2025-08-05")
		assert.True(t, reservation.IsAvailable(snapshot, cabin.Large, stay, uuid.Nil))
	})

	t.Run("no self-conflict with excludeID", func(t *testing.T) {
		assert.False(t, reservation.IsAvailable(snapshot, cabin.Small, existing.Stay, uuid.Nil))
		assert.True(t, reservation.IsAvailable(snapshot, cabin.Small, existing.Stay, existing.ID))
	})

	t.Run("cancelled reservations never conflict", func(t *testing.T) {
		cancelled := builder.NewReservationBuilder().
			WithCabin(cabin.Small).
			WithStay("2025-08-01", "2025-08-05").
			WithStatus(reservation.StatusCancelled).
			BuildSnapshot()

		stay := mustStay(t, "2025-08-02", "2025-08-04")
		assert.True(t, reservation.IsAvailable([]reservation.Snapshot{cancelled}, cabin.Small, stay, uuid.Nil))
	})

	t.Run("pending reservations do conflict", func(t *testing.T) {
		pending := builder.NewReservationBuilder().
			WithCabin(cabin.Small).
			WithStay("2025-08-01", "2025-08-05").
			WithStatus(reservation.StatusPending).
			BuildSnapshot()

		stay := mustStay(t, "2025-08-02", "2025-08-04")
		assert.False(t, reservation.IsAvailable([]reservation.Snapshot{pending}, cabin.Small, stay, uuid.Nil))
	})
}

func TestCheckAllCabins(t *testing.T) {
	snapshot := []reservation.Snapshot{
		builder.NewReservationBuilder().WithCabin(cabin.Medium2).WithStay("2025-08-01", "2025-08-05").BuildSnapshot(),
	}
	stay := mustStay(t, "2025-08-03", "2025-08-06")

	t.Run("declared catalog order with capacities", func(t *testing.T) {
		got := reservation.CheckAllCabins(snapshot, stay, uuid.Nil)

		want := []reservation.CabinAvailability{
			{CabinID: cabin.Small, Available: true, MaxCapacity: 3},
			{CabinID: cabin.Medium1, Available: true, MaxCapacity: 4},
			{CabinID: cabin.Medium2, Available: false, MaxCapacity: 4},
			{CabinID: cabin.Large, Available: true, MaxCapacity: 6},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("CheckAllCabins mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("idempotent read", func(t *testing.T) {
		first := reservation.CheckAllCabins(snapshot, stay, uuid.Nil)
		second := reservation.CheckAllCabins(snapshot, stay, uuid.Nil)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("repeated check diverged (-first +second):\n%s", diff)
		}
	})
}

func TestNextAvailableDate(t *testing.T) {
	t.Run("first day after a fully booked run", func(t *testing.T) {
		snapshot := []reservation.Snapshot{
			builder.NewReservationBuilder().WithCabin(cabin.Small).WithStay("2025-09-01", "2025-09-06").BuildSnapshot(),
			builder.NewReservationBuilder().WithCabin(cabin.Small).WithStay("2025-09-06", "2025-09-10").BuildSnapshot(),
		}

		got, ok := reservation.NextAvailableDate(snapshot, cabin.Small, mustDate(t, "2025-09-01"), 30)
		require.True(t, ok)
		assert.Equal(t, "2025-09-10", got.String())
	})

	t.Run("fromDate itself when already clear", func(t *testing.T) {
		snapshot := []reservation.Snapshot{
			builder.NewReservationBuilder().WithCabin(cabin.Small).WithStay("2025-08-01", "2025-08-05").BuildSnapshot(),
		}

		got, ok := reservation.NextAvailableDate(snapshot, cabin.Small, mustDate(t, "2025-08-06"), 30)
		require.True(t, ok)
		assert.Equal(t, "2025-08-06", got.String())
	})

	t.Run("horizon exhausted means no answer", func(t *testing.T) {
		snapshot := []reservation.Snapshot{
			builder.NewReservationBuilder().WithCabin(cabin.Small).WithStay("2025-08-01", "2025-12-31").BuildSnapshot(),
		}

		_, ok := reservation.NextAvailableDate(snapshot, cabin.Small, mustDate(t, "2025-08-02"), 30)
		assert.False(t, ok)
	})

	t.Run("other cabins do not occupy the day", func(t *testing.T) {
		snapshot := []reservation.Snapshot{
			builder.NewReservationBuilder().WithCabin(cabin.Large).WithStay("2025-08-01", "2025-12-31").BuildSnapshot(),
		}

		got, ok := reservation.NextAvailableDate(snapshot, cabin.Small, mustDate(t, "2025-08-02"), 30)
		require.True(t, ok)
		assert.Equal(t, "2025-08-02", got.String())
	})

	t.Run("cancelled runs are free", func(t *testing.T) {
		snapshot := []reservation.Snapshot{
			builder.NewReservationBuilder().
				WithCabin(cabin.Small).
				WithStay("2025-08-01", "2025-12-31").
				WithStatus(reservation.StatusCancelled).
				BuildSnapshot(),
		}

		got, ok := reservation.NextAvailableDate(snapshot, cabin.Small, mustDate(t, "2025-08-02"), 30)
		require.True(t, ok)
		assert.Equal(t, "2025-08-02", got.String())
	})
}

// End-to-end scenario from the booking workflow: one confirmed stay, then
// a turnover booking, then a conflicting booking that gets redirected.
func TestAvailabilityScenario(t *testing.T) {
	existing := builder.NewReservationBuilder().
		WithCabin(cabin.Small).
		WithStay("2025-08-01", "2025-08-05").
		BuildSnapshot()
	snapshot := []reservation.Snapshot{existing}

	assert.True(t, reservation.IsAvailable(snapshot, cabin.Small, mustStay(t, "2025-08-05", "2025-08-10"), uuid.Nil))
	assert.False(t, reservation.IsAvailable(snapshot, cabin.Small, mustStay(t, "2025-08-04", "2025-08-06"), uuid.Nil))

	next, ok := reservation.NextAvailableDate(snapshot, cabin.Small, mustDate(t, "2025-08-06"), 30)
	require.True(t, ok)
	assert.Equal(t, "2025-08-06", next.String())
}
