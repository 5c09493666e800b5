package accounts

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authforms/pkg/logger"
	"github.com/dmitrymomot/authforms/pkg/sanitizer"
)

// Service registers accounts and checks login credentials. Field formats
// are the form layer's job; the service only enforces uniqueness and the
// password match.
type Service struct {
	storage    Storage
	bcryptCost int
	logger     *slog.Logger
	now        func() time.Time
}

type Option func(*Service)

func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewService(storage Storage, opts ...Option) *Service {
	s := &Service{
		storage:    storage,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger.Discard(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates an account and returns its id. Emails are compared
// case-insensitively.
func (s *Service) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	in.Email = sanitizer.NormalizeEmail(in.Email)
	if _, err := s.storage.ByEmail(ctx, in.Email); err == nil {
		return uuid.Nil, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return uuid.Nil, errors.Join(ErrHashPassword, err)
	}

	a := Account{
		ID:           uuid.New(),
		Firstname:    in.Firstname,
		Surname:      in.Surname,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.storage.Insert(ctx, a); err != nil {
		return uuid.Nil, err
	}

	s.logger.InfoContext(ctx, "account registered",
		logger.Component("accounts"),
		logger.UserID(a.ID),
	)
	return a.ID, nil
}

// Login returns the id of the account owning email when password matches.
func (s *Service) Login(ctx context.Context, email, password string) (uuid.UUID, error) {
	a, err := s.storage.ByEmail(ctx, sanitizer.NormalizeEmail(email))
	if err != nil {
		return uuid.Nil, err
	}
	if err := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)); err != nil {
		s.logger.InfoContext(ctx, "login rejected",
			logger.Component("accounts"),
			logger.UserID(a.ID),
			slog.String("email", sanitizer.MaskEmail(email)),
		)
		return uuid.Nil, ErrIncorrectPassword
	}
	return a.ID, nil
}

// Exists reports whether an account is registered under email.
func (s *Service) Exists(ctx context.Context, email string) bool {
	_, err := s.storage.ByEmail(ctx, sanitizer.NormalizeEmail(email))
	return err == nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (Account, error) {
	return s.storage.ByID(ctx, id)
}

// SeedDummy registers the Dummy account unless it already exists.
func (s *Service) SeedDummy(ctx context.Context) error {
	if s.Exists(ctx, Dummy.Email) {
		return nil
	}
	_, err := s.Register(ctx, Dummy)
	return err
}
