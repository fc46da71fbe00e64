package services

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"marketchat/auth"
	"marketchat/domain/event"
	"marketchat/errors"
	"marketchat/repositories"
	"marketchat/sanitize"

	"github.com/samber/lo"
)

type IAuthService interface {
	Login(email, password string) (Token, error)
	Register(email, password string) (Token, error)
}

type AuthService struct {
	log            *slog.Logger
	userRepository repositories.IUserRepository
	issuer         auth.TokenIssuer
	events         chan<- event.Event
}

type Token string

func (t Token) String() string {
	return string(t)
}

func NewAuthService(log *slog.Logger, repo repositories.IUserRepository, issuer auth.TokenIssuer, events chan<- event.Event) *AuthService {
	return &AuthService{
		log:            log,
		userRepository: repo,
		issuer:         issuer,
		events:         events,
	}
}

// Register creates a plain user account. Self-registration never grants the admin role.
func (s *AuthService) Register(email, password string) (Token, error) {
	roles := []string{auth.RoleUser}
	userID, err := s.createUser(email, password, roles)
	if err != nil {
		return "", err
	}

	token, err := s.issuer.GenerateToken(userID, roles)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}

	publish(s.log, s.events, event.New(event.SecurityType, event.Security{
		Kind:    event.UserRegistered,
		Subject: userID,
	}))
	return Token(token), nil
}

// SeedAdmin creates the operator account configured at startup with the admin role.
// Seeding again is a no-op. An account already registered under that email
// without the admin role is never promoted, errors.ErrAdminEmailTaken is returned.
func (s *AuthService) SeedAdmin(email, password string) error {
	_, err := s.createUser(email, password, []string{auth.RoleUser, auth.RoleAdmin})
	if err == nil {
		publish(s.log, s.events, event.New(event.SecurityType, event.Security{
			Kind:    event.AdminSeeded,
			Subject: sanitize.SanitizeEmail(email),
		}))
		return nil
	}
	if !stderrors.Is(err, errors.ErrUserAlreadyExists) {
		return err
	}

	existing, err := s.userRepository.GetUserByEmail(sanitize.SanitizeEmail(email))
	if err != nil {
		return err
	}
	if !lo.Contains(existing.Roles, auth.RoleAdmin) {
		return fmt.Errorf("%w: %s", errors.ErrAdminEmailTaken, existing.Email)
	}
	s.log.Debug("Admin account already seeded", "user_id", existing.ID)
	return nil
}

func (s *AuthService) createUser(email, password string, roles []string) (string, error) {
	email = sanitize.SanitizeEmail(email)
	if !sanitize.IsValidEmail(email) {
		return "", errors.ErrInvalidEmail
	}

	// Business rules are checked before any expensive cryptographic operation.
	if err := auth.ValidateRegister(auth.RegisterRequest{Email: email, Password: password}); err != nil {
		if stderrors.Is(err, errors.ErrInvalidPassword) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}
	return s.userRepository.CreateUser(email, hashedPassword, roles)
}

func (s *AuthService) Login(email, password string) (Token, error) {
	email = sanitize.SanitizeEmail(email)
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		// Same error as a wrong password so accounts cannot be enumerated
		s.loginFailed(email)
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		s.loginFailed(email)
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.issuer.GenerateToken(user.ID, user.Roles)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}

func (s *AuthService) loginFailed(email string) {
	publish(s.log, s.events, event.New(event.SecurityType, event.Security{
		Kind:    event.LoginFailed,
		Subject: email,
	}))
}
