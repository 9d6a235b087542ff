package owners

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdmi/salon-booking-service/internal/domain"
	ownerRepo "github.com/avdmi/salon-booking-service/internal/infra/storage/owner"
	"github.com/avdmi/salon-booking-service/internal/service/owners/models"
)

type fakeOwnerRepo struct {
	owners      map[string]*domain.Owner
	invitations map[uuid.UUID]*domain.Invitation
	nextID      int64
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{
		owners:      make(map[string]*domain.Owner),
		invitations: make(map[uuid.UUID]*domain.Invitation),
	}
}

func (r *fakeOwnerRepo) CreateOwner(_ context.Context, o *domain.Owner) (*domain.Owner, error) {
	if _, ok := r.owners[o.Email]; ok {
		return nil, ownerRepo.ErrOwnerExists
	}
	r.nextID++
	created := *o
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	r.owners[o.Email] = &created
	return &created, nil
}

func (r *fakeOwnerRepo) GetOwnerByEmail(_ context.Context, email string) (*domain.Owner, error) {
	o, ok := r.owners[email]
	if !ok {
		return nil, ownerRepo.ErrOwnerNotFound
	}
	return o, nil
}

func (r *fakeOwnerRepo) CreateInvitation(_ context.Context, inv *domain.Invitation) (*domain.Invitation, error) {
	created := *inv
	created.CreatedAt = time.Now()
	r.invitations[inv.Token] = &created
	return &created, nil
}

func (r *fakeOwnerRepo) GetInvitation(_ context.Context, token uuid.UUID) (*domain.Invitation, error) {
	inv, ok := r.invitations[token]
	if !ok {
		return nil, ownerRepo.ErrInvitationNotFound
	}
	return inv, nil
}

func (r *fakeOwnerRepo) MarkInvitationUsed(_ context.Context, token uuid.UUID) error {
	inv, ok := r.invitations[token]
	if !ok {
		return ownerRepo.ErrInvitationNotFound
	}
	if inv.IsUsed() {
		return ownerRepo.ErrInvitationUsed
	}
	now := time.Now()
	inv.UsedAt = &now
	return nil
}

type fakeScheduleRepo struct {
	created []*domain.OwnerSchedule
}

func (r *fakeScheduleRepo) Create(_ context.Context, s *domain.OwnerSchedule) (*domain.OwnerSchedule, error) {
	r.created = append(r.created, s)
	return s, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeOwnerRepo, *fakeScheduleRepo) {
	owners := newFakeOwnerRepo()
	schedules := &fakeScheduleRepo{}
	svc := NewService(owners, schedules, fakeTxManager{}, noopLogger{})
	return svc, owners, schedules
}

func issueInvitation(t *testing.T, svc *Service, email string) string {
	t.Helper()
	inv, err := svc.CreateInvitation(context.Background(), &models.CreateInvitationRequest{Email: email})
	require.NoError(t, err)
	return inv.Token
}

func TestRegister_Success(t *testing.T) {
	svc, owners, schedules := newTestService()
	token := issueInvitation(t, svc, "owner@example.com")

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Token:    token,
		Email:    "Owner@Example.com",
		Name:     "Мария",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", resp.Email)
	assert.Equal(t, "owner@example.com", resp.OwnerKey)
	assert.Equal(t, "Мария", resp.Name)

	// Расписание по умолчанию создается вместе с владельцем
	require.Len(t, schedules.created, 1)
	assert.Equal(t, "owner@example.com", schedules.created[0].OwnerKey)
	assert.Equal(t, domain.DefaultStartHour, schedules.created[0].StartHour)

	// Приглашение погашено
	inv := owners.invitations[uuid.MustParse(token)]
	assert.True(t, inv.IsUsed())
}

func TestRegister_PasswordRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()
	token := issueInvitation(t, svc, "owner@example.com")

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Token:    token,
		Email:    "owner@example.com",
		Name:     "Мария",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "owner@example.com",
		Password: "correct horse",
	})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_InvitationNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Token:    uuid.NewString(),
		Email:    "owner@example.com",
		Name:     "Мария",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestRegister_InvitationAlreadyUsed(t *testing.T) {
	svc, _, _ := newTestService()
	token := issueInvitation(t, svc, "owner@example.com")

	req := &models.RegisterRequest{
		Token:    token,
		Email:    "owner@example.com",
		Name:     "Мария",
		Password: "correct horse",
	}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvitationUsed)
}

func TestRegister_EmailMismatch(t *testing.T) {
	svc, _, _ := newTestService()
	token := issueInvitation(t, svc, "owner@example.com")

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Token:    token,
		Email:    "someone-else@example.com",
		Name:     "Мария",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, ErrEmailMismatch)
}

func TestRegister_ValidationErrors(t *testing.T) {
	valid := func(token string) *models.RegisterRequest {
		return &models.RegisterRequest{
			Token:    token,
			Email:    "owner@example.com",
			Name:     "Мария",
			Password: "correct horse",
		}
	}

	tests := []struct {
		name   string
		mutate func(r *models.RegisterRequest)
	}{
		{"empty token", func(r *models.RegisterRequest) { r.Token = "" }},
		{"malformed token", func(r *models.RegisterRequest) { r.Token = "not-a-uuid" }},
		{"empty email", func(r *models.RegisterRequest) { r.Email = "" }},
		{"invalid email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
		{"empty name", func(r *models.RegisterRequest) { r.Name = "  " }},
		{"short password", func(r *models.RegisterRequest) { r.Password = "short" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newTestService()
			token := issueInvitation(t, svc, "owner@example.com")

			req := valid(token)
			tc.mutate(req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLogin_UnknownEmailNotDisclosed(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever12",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateInvitation_NormalizesEmail(t *testing.T) {
	svc, owners, _ := newTestService()

	resp, err := svc.CreateInvitation(context.Background(), &models.CreateInvitationRequest{
		Email: "  Owner@Example.COM ",
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", resp.Email)

	inv := owners.invitations[uuid.MustParse(resp.Token)]
	require.NotNil(t, inv)
	assert.Equal(t, "owner@example.com", inv.Email)
}

func TestCreateInvitation_InvalidEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateInvitation(context.Background(), &models.CreateInvitationRequest{Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
