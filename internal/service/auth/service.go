package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository"
	"github.com/shewell/maternity-api/internal/service/notification"
	"github.com/shewell/maternity-api/pkg/auth"
	apperrors "github.com/shewell/maternity-api/pkg/errors"
)

const bcryptCost = 12

// RegisterInput carries the fields common to both kinds plus the
// doctor-specific ones.
type RegisterInput struct {
	Kind     model.AccountKind
	Name     string
	Email    string
	Phone    string
	Password string

	// patient extras, mirrored into the initial profile
	DueDate       string
	WeeksPregnant int

	// doctor extras
	Specialization string
	Location       string
	Hospital       string
	Insurance      []string
	AvailableDays  string
	PricePerMinute float64
}

// Session is the result of a successful register or login.
type Session struct {
	Account model.SessionAccount
	Token   string
}

type Service struct {
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
	profiles repository.ProfileRepository
	tokens   auth.TokenService
	notifSvc *notification.Service
}

func NewService(
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
	profiles repository.ProfileRepository,
	tokens auth.TokenService,
	notifSvc *notification.Service,
) *Service {
	return &Service{
		patients: patients,
		doctors:  doctors,
		profiles: profiles,
		tokens:   tokens,
		notifSvc: notifSvc,
	}
}

// Register creates an account of the given kind. The same email may exist
// once per kind; a duplicate within a kind fails with AlreadyExists.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	if !input.Kind.Valid() {
		return nil, apperrors.NewInvalidInput("unknown account kind", nil)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" || input.Name == "" {
		return nil, apperrors.NewInvalidInput("name, email and password are required", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var account model.SessionAccount
	switch input.Kind {
	case model.AccountKindPatient:
		account, err = s.registerPatient(ctx, input, email, string(hash))
	case model.AccountKindDoctor:
		account, err = s.registerDoctor(ctx, input, email, string(hash))
	}
	if err != nil {
		return nil, err
	}

	// Welcome SMS is best-effort; registration already succeeded.
	s.notifSvc.Dispatch(ctx, model.NotificationWelcome, input.Phone, notification.Params{
		Name: input.Name,
	})

	return s.beginSession(account)
}

func (s *Service) registerPatient(ctx context.Context, input RegisterInput, email, hash string) (model.SessionAccount, error) {
	if _, err := s.patients.GetByEmail(ctx, email); err == nil {
		return model.SessionAccount{}, apperrors.NewAlreadyExists("email")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return model.SessionAccount{}, fmt.Errorf("failed to check email: %w", err)
	}

	patient := &model.Patient{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        email,
		Phone:        input.Phone,
		PasswordHash: hash,
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		return model.SessionAccount{}, fmt.Errorf("failed to create patient: %w", err)
	}

	profile := &model.Profile{
		OwnerID:       patient.ID,
		Name:          input.Name,
		Email:         email,
		DueDate:       input.DueDate,
		WeeksPregnant: input.WeeksPregnant,
		Reminders:     []model.Reminder{},
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return model.SessionAccount{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return model.SessionAccount{
		ID:    patient.ID,
		Kind:  model.AccountKindPatient,
		Name:  patient.Name,
		Email: patient.Email,
	}, nil
}

func (s *Service) registerDoctor(ctx context.Context, input RegisterInput, email, hash string) (model.SessionAccount, error) {
	if _, err := s.doctors.GetByEmail(ctx, email); err == nil {
		return model.SessionAccount{}, apperrors.NewAlreadyExists("email")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return model.SessionAccount{}, fmt.Errorf("failed to check email: %w", err)
	}

	doctor := &model.Doctor{
		ID:             uuid.New(),
		Name:           input.Name,
		Email:          email,
		Phone:          input.Phone,
		Specialization: input.Specialization,
		Location:       input.Location,
		Hospital:       input.Hospital,
		Insurance:      input.Insurance,
		AvailableDays:  input.AvailableDays,
		PricePerMinute: input.PricePerMinute,
		PasswordHash:   hash,
	}
	if err := s.doctors.Create(ctx, doctor); err != nil {
		return model.SessionAccount{}, fmt.Errorf("failed to create doctor: %w", err)
	}

	return model.SessionAccount{
		ID:    doctor.ID,
		Kind:  model.AccountKindDoctor,
		Name:  doctor.Name,
		Email: doctor.Email,
	}, nil
}

// Login verifies the credentials against the kind's table. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, kind model.AccountKind, email, password string) (*Session, error) {
	if !kind.Valid() {
		return nil, apperrors.NewInvalidInput("unknown account kind", nil)
	}
	email = strings.ToLower(strings.TrimSpace(email))

	var account model.SessionAccount
	var hash string

	switch kind {
	case model.AccountKindPatient:
		patient, err := s.patients.GetByEmail(ctx, email)
		if err != nil {
			return nil, invalidCredentials(err)
		}
		account = model.SessionAccount{ID: patient.ID, Kind: kind, Name: patient.Name, Email: patient.Email}
		hash = patient.PasswordHash
	case model.AccountKindDoctor:
		doctor, err := s.doctors.GetByEmail(ctx, email)
		if err != nil {
			return nil, invalidCredentials(err)
		}
		account = model.SessionAccount{ID: doctor.ID, Kind: kind, Name: doctor.Name, Email: doctor.Email}
		hash = doctor.PasswordHash
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, apperrors.NewUnauthenticated("invalid email or password")
	}

	return s.beginSession(account)
}

func invalidCredentials(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewUnauthenticated("invalid email or password")
	}
	return fmt.Errorf("failed to look up account: %w", err)
}

func (s *Service) beginSession(account model.SessionAccount) (*Session, error) {
	token, err := s.tokens.Generate(auth.SessionClaims{
		AccountID:   account.ID,
		AccountKind: account.Kind,
		Email:       account.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to begin session: %w", err)
	}
	return &Session{Account: account, Token: token}, nil
}
