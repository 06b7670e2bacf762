package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/jmdelaney/dayglow/internal/constants"
)

var (
	// ErrNotFound is returned when no entry exists in the keyring
	ErrNotFound = errors.New("not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func get(user string) (string, error) {
	val, err := keyring.Get(constants.AppName, user)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return val, nil
}

func set(user, val string) error {
	if val == "" {
		return errors.New("value cannot be empty")
	}
	if err := keyring.Set(constants.AppName, user, val); err != nil {
		return fmt.Errorf("failed to store in keyring: %w", err)
	}
	return nil
}

func del(user string) error {
	if err := keyring.Delete(constants.AppName, user); err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete from keyring: %w", err)
	}
	return nil
}

// GetConnectionString retrieves the remote database connection string.
func GetConnectionString() (string, error) {
	return get(constants.KeyringConnectionUser)
}

// SetConnectionString stores the remote database connection string.
func SetConnectionString(connStr string) error {
	return set(constants.KeyringConnectionUser, connStr)
}

// DeleteConnectionString removes the remote database connection string.
func DeleteConnectionString() error {
	return del(constants.KeyringConnectionUser)
}

// GetIdentity retrieves the stored user identity the remote document row is
// keyed by.
func GetIdentity() (string, error) {
	return get(constants.KeyringIdentityUser)
}

// SetIdentity stores the user identity.
func SetIdentity(userID string) error {
	return set(constants.KeyringIdentityUser, userID)
}

// DeleteIdentity removes the stored user identity.
func DeleteIdentity() error {
	return del(constants.KeyringIdentityUser)
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
