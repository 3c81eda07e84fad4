package userRepo

import (
	"errors"

	"ongkit/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no user matches.
var ErrNotFound = errors.New("user not found")

// UserRepository defines methods for account data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email address.
	GetByEmail(email string) (*models.User, error)
	// GetByTokenHash retrieves a user whose tokenHash matches the provided hash.
	GetByTokenHash(tokenHash string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateWithDocument patches a user document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
}
