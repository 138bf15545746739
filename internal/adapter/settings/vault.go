package settings

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "leetpush"
	keyringUser    = "github-token"
)

// Vault keeps the access token outside the settings file.
type Vault interface {
	Get() (string, error)
	Set(token string) error
}

// KeyringVault stores the token in the OS keyring.
type KeyringVault struct {
	service string
	user    string
}

// NewKeyringVault returns a vault bound to the leetpush keyring entry.
func NewKeyringVault() *KeyringVault {
	return &KeyringVault{service: keyringService, user: keyringUser}
}

// Get returns "" when no token has been stored yet.
func (v *KeyringVault) Get() (string, error) {
	token, err := keyring.Get(v.service, v.user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token from keyring: %w", err)
	}
	return token, nil
}

// Set stores the token; an empty token removes the entry.
func (v *KeyringVault) Set(token string) error {
	if token == "" {
		if err := keyring.Delete(v.service, v.user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("delete token from keyring: %w", err)
		}
		return nil
	}
	if err := keyring.Set(v.service, v.user, token); err != nil {
		return fmt.Errorf("write token to keyring: %w", err)
	}
	return nil
}
