package services

import (
	"log/slog"
	"testing"
	"time"

	"marketchat/auth"
	"marketchat/domain/event"
	"marketchat/errors"
	"marketchat/mocks"
	"marketchat/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	issuer := auth.NewTokenIssuer("service-secret", 24*time.Hour)
	mockRepo := mocks.NewMockIUserRepository(ctrl)
	events := make(chan event.Event, 10)
	svc := NewAuthService(log, mockRepo, issuer, events)

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)

		// The stored email is normalized and the password is hashed
		mockRepo.EXPECT().
			CreateUser("seller@example.com", gomock.Not("ComplexPass123!"), []string{auth.RoleUser}).
			Return("user-uuid", nil).
			Times(1)

		token, err := svc.Register("  Seller@Example.com ", "ComplexPass123!")
		req.NoError(err)
		req.NotEmpty(token)

		claims, err := issuer.ValidateToken(token.String())
		req.NoError(err)
		req.Equal("user-uuid", claims.UserID)

		e := <-events
		req.Equal(event.SecurityType, e.Type)
		req.Equal(event.UserRegistered, e.Payload.(event.Security).Kind)
	})


	t.Run("should fail when email is malformed", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Register("not-an-email", "ComplexPass123!")
		req.ErrorIs(err, errors.ErrInvalidEmail)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		token, err := svc.Register("seller@example.com", "NoSpecialChar123")
		req.ErrorIs(err, errors.ErrInvalidPassword)
		req.Empty(token)
	})

	t.Run("should fail when password is too short", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Register("seller@example.com", "simple")
		req.ErrorIs(err, errors.ErrInvalidCommand)
	})

	t.Run("should fail when user already exists in repository", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().
			CreateUser("duplicate@example.com", gomock.Any(), gomock.Any()).
			Return("", errors.ErrUserAlreadyExists).
			Times(1)

		_, err := svc.Register("duplicate@example.com", "ComplexPass123!")
		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	issuer := auth.NewTokenIssuer("service-secret", 24*time.Hour)
	mockRepo := mocks.NewMockIUserRepository(ctrl)
	events := make(chan event.Event, 10)
	svc := NewAuthService(log, mockRepo, issuer, events)

	t.Run("should login successfully with correct credentials", func(t *testing.T) {
		req := require.New(t)
		password := "Secret123456!"
		hashedPassword, err := auth.HashPassword(password)
		req.NoError(err)
		storedUser := repositories.User{
			ID:           "uuid-123",
			Email:        "buyer@example.com",
			PasswordHash: hashedPassword,
			Roles:        []string{auth.RoleUser},
		}

		mockRepo.EXPECT().GetUserByEmail("buyer@example.com").Return(storedUser, nil).Times(1)

		token, err := svc.Login("Buyer@example.com", password)
		req.NoError(err)

		claims, err := issuer.ValidateToken(token.String())
		req.NoError(err)
		req.Equal(storedUser.ID, claims.UserID)
	})

	t.Run("should return invalid credentials when password matches nothing", func(t *testing.T) {
		req := require.New(t)
		hashedPassword, err := auth.HashPassword("CorrectPassword123!")
		req.NoError(err)

		mockRepo.EXPECT().
			GetUserByEmail("buyer@example.com").
			Return(repositories.User{Email: "buyer@example.com", PasswordHash: hashedPassword}, nil).
			Times(1)

		_, err = svc.Login("buyer@example.com", "WrongPassword123!")
		req.ErrorIs(err, errors.ErrInvalidCredentials)

		e := <-events
		req.Equal(event.LoginFailed, e.Payload.(event.Security).Kind)
	})

	t.Run("should return invalid credentials when user is not found", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().
			GetUserByEmail("unknown@example.com").
			Return(repositories.User{}, errors.ErrInvalidCredentials).
			Times(1)

		_, err := svc.Login("unknown@example.com", "anyPassword")
		req.ErrorIs(err, errors.ErrInvalidCredentials)
		<-events
	})
}

func TestAuthService_SeedAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	issuer := auth.NewTokenIssuer("service-secret", 24*time.Hour)
	mockRepo := mocks.NewMockIUserRepository(ctrl)
	events := make(chan event.Event, 10)
	svc := NewAuthService(log, mockRepo, issuer, events)

	t.Run("should create the account with the admin role", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().
			CreateUser("moderator@example.com", gomock.Any(), []string{auth.RoleUser, auth.RoleAdmin}).
			Return("admin-uuid", nil).
			Times(1)

		req.NoError(svc.SeedAdmin(" Moderator@Example.com", "ComplexPass123!"))
		e := <-events
		req.Equal(event.AdminSeeded, e.Payload.(event.Security).Kind)
	})

	t.Run("should accept an account already seeded", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().CreateUser("moderator@example.com", gomock.Any(), gomock.Any()).
			Return("", errors.ErrUserAlreadyExists).Times(1)
		mockRepo.EXPECT().GetUserByEmail("moderator@example.com").
			Return(repositories.User{ID: "admin-uuid", Email: "moderator@example.com", Roles: []string{auth.RoleUser, auth.RoleAdmin}}, nil).
			Times(1)

		req.NoError(svc.SeedAdmin("moderator@example.com", "ComplexPass123!"))
	})

	t.Run("should never promote a self-registered account", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().CreateUser("moderator@example.com", gomock.Any(), gomock.Any()).
			Return("", errors.ErrUserAlreadyExists).Times(1)
		mockRepo.EXPECT().GetUserByEmail("moderator@example.com").
			Return(repositories.User{ID: "squatter", Email: "moderator@example.com", Roles: []string{auth.RoleUser}}, nil).
			Times(1)

		req.ErrorIs(svc.SeedAdmin("moderator@example.com", "ComplexPass123!"), errors.ErrAdminEmailTaken)
	})

	t.Run("should refuse a weak admin password", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		req.ErrorIs(svc.SeedAdmin("moderator@example.com", "weak"), errors.ErrInvalidCommand)
	})
}

func TestAuthService_RegisterNeverGrantsAdmin(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	issuer := auth.NewTokenIssuer("service-secret", time.Hour)
	svc := NewAuthService(log, repositories.NewUserRepository(db), issuer, nil)

	// Quotes and case are normalized away, the address is the operator one
	token, err := svc.Register(`"MODERATOR@example.com"`, "ComplexPass123!")
	req.NoError(err)
	claims, err := issuer.ValidateToken(token.String())
	req.NoError(err)
	req.Equal([]string{auth.RoleUser}, claims.Roles)

	req.ErrorIs(svc.SeedAdmin("moderator@example.com", "ComplexPass123!"), errors.ErrAdminEmailTaken)

	token, err = svc.Login("moderator@example.com", "ComplexPass123!")
	req.NoError(err)
	claims, err = issuer.ValidateToken(token.String())
	req.NoError(err)
	req.NotContains(claims.Roles, auth.RoleAdmin)
}
