package owners

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avdmi/salon-booking-service/internal/domain"
	ownerRepo "github.com/avdmi/salon-booking-service/internal/infra/storage/owner"
	"github.com/avdmi/salon-booking-service/internal/service/owners/models"
)

const (
	minPasswordLength = 8
	maxNameLength     = 100
)

// Service сервис регистрации и аутентификации владельцев
type Service struct {
	ownerRepo    OwnerRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса владельцев
func NewService(
	ownerRepo OwnerRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		ownerRepo:    ownerRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// CreateInvitation выпускает одноразовое приглашение на регистрацию
func (s *Service) CreateInvitation(ctx context.Context, req *models.CreateInvitationRequest) (*models.InvitationResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	s.logger.Info("CreateInvitation: email=%s", email)

	inv := &domain.Invitation{
		Token: uuid.New(),
		Email: email,
	}

	created, err := s.ownerRepo.CreateInvitation(ctx, inv)
	if err != nil {
		s.logger.Error("CreateInvitation: failed to create invitation for %s: %v", email, err)
		return nil, fmt.Errorf("%w: CreateInvitation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateInvitation: invitation %s issued for %s", created.Token, email)
	return models.FromDomainInvitation(created), nil
}

// Register регистрирует владельца по действующему приглашению.
// Создание владельца, расписания по умолчанию и гашение приглашения
// выполняются в одной транзакции.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.OwnerResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)

	if err := validateRegister(req.Token, email, name, req.Password); err != nil {
		s.logger.Warn("Register: validation failed for %s: %v", email, err)
		return nil, err
	}

	token, err := uuid.Parse(req.Token)
	if err != nil {
		return nil, fmt.Errorf("%w: token must be a valid UUID", ErrInvalidInput)
	}

	s.logger.Info("Register: email=%s, token=%s", email, token)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password for %s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	var owner *domain.Owner

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		inv, err := s.ownerRepo.GetInvitation(ctx, token)
		if err != nil {
			if errors.Is(err, ownerRepo.ErrInvitationNotFound) {
				return ErrInvitationNotFound
			}
			return fmt.Errorf("%w: Register - get invitation: %v", ErrInternal, err)
		}

		if inv.IsUsed() {
			return ErrInvitationUsed
		}
		if inv.Email != email {
			return ErrEmailMismatch
		}

		owner, err = s.ownerRepo.CreateOwner(ctx, &domain.Owner{
			Email:        email,
			Name:         name,
			PasswordHash: string(hash),
		})
		if err != nil {
			if errors.Is(err, ownerRepo.ErrOwnerExists) {
				return ErrOwnerExists
			}
			return fmt.Errorf("%w: Register - create owner: %v", ErrInternal, err)
		}

		if _, err := s.scheduleRepo.Create(ctx, domain.DefaultSchedule(email)); err != nil {
			return fmt.Errorf("%w: Register - create default schedule: %v", ErrInternal, err)
		}

		if err := s.ownerRepo.MarkInvitationUsed(ctx, token); err != nil {
			if errors.Is(err, ownerRepo.ErrInvitationUsed) {
				return ErrInvitationUsed
			}
			return fmt.Errorf("%w: Register - mark invitation used: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		s.logger.Warn("Register: registration failed for %s: %v", email, err)
		return nil, err
	}

	s.logger.Info("Register: owner %d registered with email %s", owner.ID, owner.Email)
	return models.FromDomainOwner(owner), nil
}

// Login проверяет учетные данные владельца
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.OwnerResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: email=%s", email)

	owner, err := s.ownerRepo.GetOwnerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ownerRepo.ErrOwnerNotFound) {
			// Не раскрываем, существует ли владелец с таким email
			s.logger.Warn("Login: owner not found for %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for %s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: invalid password for %s", email)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: owner %d authenticated", owner.ID)
	return models.FromDomainOwner(owner), nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email format is invalid", ErrInvalidInput)
	}
	return nil
}

func validateRegister(token, email, name, password string) error {
	if token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidInput)
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name too long, max %d characters", ErrInvalidInput, maxNameLength)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}
