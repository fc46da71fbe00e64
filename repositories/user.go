//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"marketchat/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	userFieldID protowire.Number = iota + 1
	userFieldEmail
	userFieldPasswordHash
	userFieldCreatedAt
	userFieldRoles
)

type IUserRepository interface {
	CreateUser(email, hashedPassword string, roles []string) (string, error)
	GetUserByEmail(email string) (User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// User is the repository representation of an account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

// CreateUser persists the user with an already hashed password.
// It returns the newly generated User ID
func (u UserRepository) CreateUser(email, hashedPassword string, roles []string) (string, error) {
	newID := uuid.New().String()
	var w recordWriter
	w.string(userFieldID, newID)
	w.string(userFieldEmail, email)
	w.string(userFieldPasswordHash, hashedPassword)
	w.varint(userFieldCreatedAt, uint64(time.Now().Unix()))
	w.strings(userFieldRoles, roles)

	err := u.db.Update(func(txn *badger.Txn) error {
		key := []byte("user:" + email)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		}
		return txn.Set(key, w.bytes())
	})
	if err != nil {
		return "", err
	}
	return newID, nil
}

// GetUserByEmail retrieves a user from Badger.
func (u UserRepository) GetUserByEmail(email string) (User, error) {
	var raw []byte
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("user:" + email))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return User{}, fmt.Errorf("get user %s: %w", email, err)
	}

	r, err := decodeRecord(raw)
	if err != nil {
		return User{}, err
	}
	return User{
		ID:           r.str(userFieldID),
		Email:        r.str(userFieldEmail),
		PasswordHash: r.str(userFieldPasswordHash),
		Roles:        r.list(userFieldRoles),
		CreatedAt:    time.Unix(int64(r.uint(userFieldCreatedAt)), 0).UTC(),
	}, nil
}
