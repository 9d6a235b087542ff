package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdmi/salon-booking-service/internal/domain"
	bookingRepo "github.com/avdmi/salon-booking-service/internal/infra/storage/booking"
	"github.com/avdmi/salon-booking-service/internal/service/bookings/models"
	"github.com/avdmi/salon-booking-service/pkg/ptr"
)

const testOwner = "owner@example.com"

type fakeBookingRepo struct {
	bookings  map[int64]*domain.Booking
	cancelErr error
	markErr   error
	claimErr  error
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	m := make(map[int64]*domain.Booking)
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{bookings: m}
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64, ownerKey string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.OwnerKey != ownerKey {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByOwnerWithFilter(_ context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.OwnerKey != filter.OwnerKey {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) MarkCompleted(_ context.Context, id int64, ownerKey string) error {
	if r.markErr != nil {
		return r.markErr
	}
	return r.transition(id, ownerKey, domain.StatusCompleted)
}

func (r *fakeBookingRepo) MarkNoShow(_ context.Context, id int64, ownerKey string) error {
	if r.markErr != nil {
		return r.markErr
	}
	return r.transition(id, ownerKey, domain.StatusNoShow)
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64, ownerKey, cancelledBy string, slotFreed bool) error {
	if r.cancelErr != nil {
		return r.cancelErr
	}
	if err := r.transition(id, ownerKey, domain.StatusCancelled); err != nil {
		return err
	}
	b := r.bookings[id]
	b.CancelledBy = &cancelledBy
	b.SlotFreed = &slotFreed
	return nil
}

func (r *fakeBookingRepo) ClaimReminder(_ context.Context, id int64) (bool, error) {
	if r.claimErr != nil {
		return false, r.claimErr
	}
	b, ok := r.bookings[id]
	if !ok || b.Status != domain.StatusConfirmed || b.ReminderSent {
		return false, nil
	}
	b.ReminderSent = true
	return true, nil
}

func (r *fakeBookingRepo) transition(id int64, ownerKey string, to domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok || b.OwnerKey != ownerKey {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status != domain.StatusConfirmed {
		return bookingRepo.ErrStatusConflict
	}
	b.Status = to
	return nil
}

type fakeNotifier struct {
	cancellations []bool
	reminders     int
}

func (n *fakeNotifier) SendCancellation(_ context.Context, _ *domain.Booking, slotFreed bool) {
	n.cancellations = append(n.cancellations, slotFreed)
}

func (n *fakeNotifier) SendReminder(_ context.Context, _ *domain.Booking) {
	n.reminders++
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
		OwnerKey:    testOwner,
		Date:        time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local),
		StartTime:   "14:00",
		Kind:        domain.KindBooking,
		Status:      domain.StatusConfirmed,
		ClientName:  ptr.Ptr("Анна"),
		ClientEmail: ptr.Ptr("anna@example.com"),
	}
}

func newService(repo *fakeBookingRepo, notifier *fakeNotifier, now time.Time) *Service {
	return NewService(repo, notifier, noopLogger{}).WithTimeProvider(&fixedTime{now: now})
}

func cancelRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{OwnerKey: testOwner, CancelledBy: "owner"}
}

func TestCancel_SlotFreedBeforeWindow(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1))
	notifier := &fakeNotifier{}
	// За 7 часов до начала: слот считается освобожденным
	svc := newService(repo, notifier, time.Date(2026, 9, 15, 7, 0, 0, 0, time.Local))

	resp, err := svc.Cancel(context.Background(), 1, cancelRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.True(t, resp.SlotFreed)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
	require.Len(t, notifier.cancellations, 1)
	assert.True(t, notifier.cancellations[0])
}

func TestCancel_LateCancellationStillAllowed(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1))
	notifier := &fakeNotifier{}
	// За 2 часа до начала: отмена проходит, но слот не считается освобожденным
	svc := newService(repo, notifier, time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local))

	resp, err := svc.Cancel(context.Background(), 1, cancelRequest())
	require.NoError(t, err)

	assert.False(t, resp.SlotFreed)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
	require.Len(t, notifier.cancellations, 1)
	assert.False(t, notifier.cancellations[0])
}

func TestCancel_ExactlyAtWindowBoundary(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1))
	// Ровно за 6 часов: граница включительно
	svc := newService(repo, &fakeNotifier{}, time.Date(2026, 9, 15, 8, 0, 0, 0, time.Local))

	resp, err := svc.Cancel(context.Background(), 1, cancelRequest())
	require.NoError(t, err)
	assert.True(t, resp.SlotFreed)
}

func TestCancel_TerminalStatus(t *testing.T) {
	b := confirmedBooking(1)
	b.Status = domain.StatusCompleted
	repo := newFakeBookingRepo(b)
	svc := newService(repo, &fakeNotifier{}, time.Now())

	_, err := svc.Cancel(context.Background(), 1, cancelRequest())
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newService(newFakeBookingRepo(), &fakeNotifier{}, time.Now())

	_, err := svc.Cancel(context.Background(), 42, cancelRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_WrongOwner(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1))
	svc := newService(repo, &fakeNotifier{}, time.Now())

	req := cancelRequest()
	req.OwnerKey = "other@example.com"

	_, err := svc.Cancel(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ConcurrentTransitionConflict(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1))
	repo.cancelErr = bookingRepo.ErrStatusConflict
	svc := newService(repo, &fakeNotifier{}, time.Now())

	_, err := svc.Cancel(context.Background(), 1, cancelRequest())
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestComplete_Success(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1))
	svc := newService(repo, &fakeNotifier{}, time.Now())

	require.NoError(t, svc.Complete(context.Background(), 1, testOwner))
	assert.Equal(t, domain.StatusCompleted, repo.bookings[1].Status)
}

func TestNoShow_Success(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1))
	svc := newService(repo, &fakeNotifier{}, time.Now())

	require.NoError(t, svc.NoShow(context.Background(), 1, testOwner))
	assert.Equal(t, domain.StatusNoShow, repo.bookings[1].Status)
}

func TestComplete_FromTerminalStatus(t *testing.T) {
	b := confirmedBooking(1)
	b.Status = domain.StatusCancelled
	repo := newFakeBookingRepo(b)
	svc := newService(repo, &fakeNotifier{}, time.Now())

	err := svc.Complete(context.Background(), 1, testOwner)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestSendReminder_Success(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1))
	notifier := &fakeNotifier{}
	svc := newService(repo, notifier, time.Now())

	require.NoError(t, svc.SendReminder(context.Background(), 1, testOwner))
	assert.Equal(t, 1, notifier.reminders)
	assert.True(t, repo.bookings[1].ReminderSent)
}

func TestSendReminder_AlreadySent(t *testing.T) {
	b := confirmedBooking(1)
	b.ReminderSent = true
	repo := newFakeBookingRepo(b)
	notifier := &fakeNotifier{}
	svc := newService(repo, notifier, time.Now())

	err := svc.SendReminder(context.Background(), 1, testOwner)
	assert.ErrorIs(t, err, ErrAlreadyReminded)
	assert.Zero(t, notifier.reminders)
}

func TestSendReminder_BlockedSlot(t *testing.T) {
	b := confirmedBooking(1)
	b.Kind = domain.KindBlocked
	b.ClientEmail = nil
	repo := newFakeBookingRepo(b)
	svc := newService(repo, &fakeNotifier{}, time.Now())

	err := svc.SendReminder(context.Background(), 1, testOwner)
	assert.ErrorIs(t, err, ErrNotRemindable)
}

func TestSendReminder_NoEmail(t *testing.T) {
	b := confirmedBooking(1)
	b.ClientEmail = nil
	repo := newFakeBookingRepo(b)
	svc := newService(repo, &fakeNotifier{}, time.Now())

	err := svc.SendReminder(context.Background(), 1, testOwner)
	assert.ErrorIs(t, err, ErrNotRemindable)
}

func TestSendReminder_TerminalStatus(t *testing.T) {
	b := confirmedBooking(1)
	b.Status = domain.StatusCancelled
	repo := newFakeBookingRepo(b)
	svc := newService(repo, &fakeNotifier{}, time.Now())

	err := svc.SendReminder(context.Background(), 1, testOwner)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestGetOwnerBookings_FiltersInactive(t *testing.T) {
	cancelled := confirmedBooking(2)
	cancelled.Status = domain.StatusCancelled
	repo := newFakeBookingRepo(confirmedBooking(1), cancelled)
	svc := newService(repo, &fakeNotifier{}, time.Now())

	resp, err := svc.GetOwnerBookings(context.Background(), &models.GetOwnerBookingsRequest{OwnerKey: testOwner})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	resp, err = svc.GetOwnerBookings(context.Background(), &models.GetOwnerBookingsRequest{
		OwnerKey:        testOwner,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestGetOwnerBookings_InvalidStatusFilter(t *testing.T) {
	svc := newService(newFakeBookingRepo(), &fakeNotifier{}, time.Now())

	_, err := svc.GetOwnerBookings(context.Background(), &models.GetOwnerBookingsRequest{
		OwnerKey: testOwner,
		Status:   ptr.Ptr("pending"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_Success(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(7))
	svc := newService(repo, &fakeNotifier{}, time.Now())

	resp, err := svc.GetByID(context.Background(), 7, testOwner)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "14:00", resp.StartTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}
