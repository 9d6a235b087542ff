package run_reminder_sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdmi/salon-booking-service/internal/domain"
	"github.com/avdmi/salon-booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings     []*domain.Booking
	claimed      map[int64]bool
	claimErr     map[int64]error
	findErr      error
	requestedFor time.Time
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: bookings,
		claimed:  make(map[int64]bool),
		claimErr: make(map[int64]error),
	}
}

func (r *fakeBookingRepo) FindDueReminders(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	r.requestedFor = date
	if r.findErr != nil {
		return nil, r.findErr
	}
	var due []*domain.Booking
	for _, b := range r.bookings {
		if b.Status == domain.StatusConfirmed && !b.ReminderSent {
			due = append(due, b)
		}
	}
	return due, nil
}

func (r *fakeBookingRepo) ClaimReminder(_ context.Context, id int64) (bool, error) {
	if err := r.claimErr[id]; err != nil {
		return false, err
	}
	if r.claimed[id] {
		return false, nil
	}
	r.claimed[id] = true
	return true, nil
}

type fakeNotifier struct {
	reminders []int64
}

func (n *fakeNotifier) SendReminder(_ context.Context, b *domain.Booking) {
	n.reminders = append(n.reminders, b.ID)
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func confirmedBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		OwnerKey:    "owner@example.com",
		Status:      domain.StatusConfirmed,
		Kind:        domain.KindBooking,
		ClientEmail: ptr.Ptr("client@example.com"),
	}
}

func TestExecute_SendsRemindersForTomorrow(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1), confirmedBooking(2))
	notifier := &fakeNotifier{}
	now := time.Date(2026, 9, 14, 18, 0, 0, 0, time.Local)

	uc := NewUseCase(repo, notifier, noopLogger{}).WithTimeProvider(&fixedTime{now: now})

	report, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local), report.TargetDate)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 0, report.Failed)
	assert.ElementsMatch(t, []int64{1, 2}, notifier.reminders)
}

func TestExecute_SecondPassSendsNothing(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1))
	notifier := &fakeNotifier{}

	uc := NewUseCase(repo, notifier, noopLogger{}).
		WithTimeProvider(&fixedTime{now: time.Date(2026, 9, 14, 18, 0, 0, 0, time.Local)})

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Sent)

	// Повторный проход: флаг уже выставлен, письмо не дублируется
	second, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Sent)
	assert.Equal(t, 1, second.Skipped)
	assert.Len(t, notifier.reminders, 1)
}

func TestExecute_ClaimErrorCountsAsFailed(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1), confirmedBooking(2))
	repo.claimErr[1] = errors.New("connection reset")
	notifier := &fakeNotifier{}

	uc := NewUseCase(repo, notifier, noopLogger{}).
		WithTimeProvider(&fixedTime{now: time.Date(2026, 9, 14, 18, 0, 0, 0, time.Local)})

	report, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Sent)
	assert.ElementsMatch(t, []int64{2}, notifier.reminders)
}

func TestExecute_MissingEmailSkippedWithoutClaim(t *testing.T) {
	noEmail := confirmedBooking(1)
	noEmail.ClientEmail = nil
	blankEmail := confirmedBooking(2)
	blankEmail.ClientEmail = ptr.Ptr("")
	repo := newFakeBookingRepo(noEmail, blankEmail, confirmedBooking(3))
	notifier := &fakeNotifier{}

	uc := NewUseCase(repo, notifier, noopLogger{}).
		WithTimeProvider(&fixedTime{now: time.Date(2026, 9, 14, 18, 0, 0, 0, time.Local)})

	report, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 2, report.Skipped)
	assert.ElementsMatch(t, []int64{3}, notifier.reminders)

	// Флаг не выставлен: записи без email остаются кандидатами
	assert.False(t, repo.claimed[1])
	assert.False(t, repo.claimed[2])
}

func TestExecute_FindError(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.findErr = errors.New("db down")

	uc := NewUseCase(repo, &fakeNotifier{}, noopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
