package schedule

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdmi/salon-booking-service/internal/domain"
	scheduleRepo "github.com/avdmi/salon-booking-service/internal/infra/storage/schedule"
	"github.com/avdmi/salon-booking-service/internal/service/schedule/models"
)

const testOwner = "owner@example.com"

type fakeScheduleRepo struct {
	schedule *domain.OwnerSchedule
	getErr   error
	updated  *domain.OwnerSchedule
}

func (r *fakeScheduleRepo) GetByOwnerKey(_ context.Context, _ string) (*domain.OwnerSchedule, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	copied := *r.schedule
	return &copied, nil
}

func (r *fakeScheduleRepo) Update(_ context.Context, s *domain.OwnerSchedule) error {
	r.updated = s
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validRequest() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		StartHour:    10,
		EndHour:      19,
		WorkingDays:  []int{2, 3, 4, 5, 6},
		SlotsPerHour: 2,
		Services:     []string{"Стрижка", "  Окрашивание  "},
	}
}

func newTestService() (*Service, *fakeScheduleRepo) {
	repo := &fakeScheduleRepo{schedule: domain.DefaultSchedule(testOwner)}
	return NewService(repo, noopLogger{}), repo
}

func TestUpdate_Success(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Update(context.Background(), testOwner, validRequest())
	require.NoError(t, err)

	assert.Equal(t, 10, resp.StartHour)
	assert.Equal(t, 19, resp.EndHour)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, resp.WorkingDays)
	assert.Equal(t, 2, resp.SlotsPerHour)
	// Названия услуг сохраняются без окружающих пробелов
	assert.Equal(t, []string{"Стрижка", "Окрашивание"}, resp.Services)

	require.NotNil(t, repo.updated)
	assert.Equal(t, testOwner, repo.updated.OwnerKey)
}

func TestUpdate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.UpdateScheduleRequest)
	}{
		{"negative start hour", func(r *models.UpdateScheduleRequest) { r.StartHour = -1 }},
		{"end hour above range", func(r *models.UpdateScheduleRequest) { r.EndHour = 24 }},
		{"start equals end", func(r *models.UpdateScheduleRequest) { r.StartHour, r.EndHour = 12, 12 }},
		{"start after end", func(r *models.UpdateScheduleRequest) { r.StartHour, r.EndHour = 18, 9 }},
		{"zero slots per hour", func(r *models.UpdateScheduleRequest) { r.SlotsPerHour = 0 }},
		{"slots per hour above max", func(r *models.UpdateScheduleRequest) { r.SlotsPerHour = 13 }},
		{"slots per hour must divide hour", func(r *models.UpdateScheduleRequest) { r.SlotsPerHour = 7 }},
		{"empty working days", func(r *models.UpdateScheduleRequest) { r.WorkingDays = []int{} }},
		{"day out of range", func(r *models.UpdateScheduleRequest) { r.WorkingDays = []int{1, 7} }},
		{"duplicate day", func(r *models.UpdateScheduleRequest) { r.WorkingDays = []int{1, 2, 1} }},
		{"blank service name", func(r *models.UpdateScheduleRequest) { r.Services = []string{"Стрижка", "   "} }},
		{"service name too long", func(r *models.UpdateScheduleRequest) {
			r.Services = []string{strings.Repeat("a", domain.MaxServiceNameLength+1)}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService()
			req := validRequest()
			tc.mutate(req)

			_, err := svc.Update(context.Background(), testOwner, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.updated)
		})
	}
}

func TestUpdate_FiveMinuteGrid(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.SlotsPerHour = 12

	resp, err := svc.Update(context.Background(), testOwner, req)
	require.NoError(t, err)
	assert.Equal(t, 12, resp.SlotsPerHour)
}

func TestUpdate_ScheduleNotFound(t *testing.T) {
	repo := &fakeScheduleRepo{getErr: scheduleRepo.ErrScheduleNotFound}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Update(context.Background(), testOwner, validRequest())
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestGet_Success(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Get(context.Background(), testOwner)
	require.NoError(t, err)

	assert.Equal(t, testOwner, resp.OwnerKey)
	assert.Equal(t, domain.DefaultStartHour, resp.StartHour)
	assert.Equal(t, domain.DefaultEndHour, resp.EndHour)
}

func TestGet_NotFound(t *testing.T) {
	repo := &fakeScheduleRepo{getErr: scheduleRepo.ErrScheduleNotFound}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Get(context.Background(), testOwner)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
