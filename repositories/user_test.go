package repositories

import (
	"testing"

	"marketchat/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(openTestDB(t))

	id, err := repo.CreateUser("seller@example.sa", "$argon2id$hash", []string{"user", "admin"})
	req.NoError(err)
	req.NotEmpty(id)

	// Duplicate emails are refused
	_, err = repo.CreateUser("seller@example.sa", "$argon2id$other", []string{"user"})
	req.ErrorIs(err, errors.ErrUserAlreadyExists)

	user, err := repo.GetUserByEmail("seller@example.sa")
	req.NoError(err)
	req.Equal(id, user.ID)
	req.Equal("seller@example.sa", user.Email)
	req.Equal("$argon2id$hash", user.PasswordHash)
	req.Equal([]string{"user", "admin"}, user.Roles)
	req.False(user.CreatedAt.IsZero())

	_, err = repo.GetUserByEmail("nobody@example.sa")
	req.ErrorIs(err, badger.ErrKeyNotFound)
}
