package auth

import (
	"context"
	"fmt"

	"github.com/go-finance-api/internal/domain"
	"github.com/google/uuid"
)

// OTPService issues and single-use-validates one-time codes keyed by email.
type OTPService interface {
	GenerateFor(ctx context.Context, key string) (string, error)
	Validate(ctx context.Context, key, candidate string) error
}

// TokenService signs and verifies stateless identity tokens. Both operations
// are CPU-only and never touch the network.
type TokenService interface {
	Generate(claims domain.Claims) (string, error)
	Validate(token string) (domain.Claims, error)
}

// UserRepository is the minimal user-store contract the orchestrator needs.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, u *domain.User) (*domain.User, error)
}

// Mailer delivers messages to a single recipient.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// Service orchestrates OTP issuance, user lookup and token signing into the
// passwordless login/signup flows. It holds no state of its own and is safe
// for concurrent use.
type Service interface {
	SendOTP(ctx context.Context, email string) error
	ValidateToken(token string) (domain.Claims, error)
	Login(ctx context.Context, email, otp string) (string, error)
	Signup(ctx context.Context, email, otp string) error
}

type service struct {
	otp    OTPService
	tokens TokenService
	users  UserRepository
	mailer Mailer
}

func NewService(otp OTPService, tokens TokenService, users UserRepository, mailer Mailer) Service {
	return &service{otp: otp, tokens: tokens, users: users, mailer: mailer}
}

// SendOTP generates a fresh code for email and mails it. A prior unconsumed
// code for the same address is overwritten, not kept alongside.
func (s *service) SendOTP(ctx context.Context, email string) error {
	code, err := s.otp.GenerateFor(ctx, email)
	if err != nil {
		return err
	}
	return s.mailer.SendEmail(email, "OTP Token", fmt.Sprintf("Your OTP is <b>%s</b>", code))
}

func (s *service) ValidateToken(token string) (domain.Claims, error) {
	return s.tokens.Validate(token)
}

// Login exchanges a valid OTP for a signed token. The user lookup runs first
// so a valid code is not burned on an unregistered email; once Validate is
// reached the code is consumed no matter what happens downstream, and the
// attempt is never retried.
func (s *service) Login(ctx context.Context, email, otp string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if err := s.otp.Validate(ctx, email, otp); err != nil {
		return "", err
	}
	return s.tokens.Generate(domain.Claims{Sub: user.ID})
}

// Signup consumes the OTP first: there is no user row to check yet, and the
// insert itself reports a conflict for an already-registered email. A
// conflicting signup therefore still costs the code. No token is issued;
// the caller logs in separately.
func (s *service) Signup(ctx context.Context, email, otp string) error {
	if err := s.otp.Validate(ctx, email, otp); err != nil {
		return err
	}
	_, err := s.users.Insert(ctx, &domain.User{ID: uuid.New(), Email: email})
	return err
}
