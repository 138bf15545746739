package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"

	"leetpush/internal/domain/model"
	"leetpush/internal/domain/ports"
)

// fileSettings is the on-disk shape of the settings file.
type fileSettings struct {
	Repository   string `yaml:"repository"`
	Branch       string `yaml:"branch,omitempty"`
	Organization string `yaml:"organization,omitempty"`
}

// Store persists settings as YAML and the token in a Vault.
// A non-empty envToken overrides the stored token.
type Store struct {
	path     string
	vault    Vault
	envToken string
	logger   ports.Logger
}

var _ ports.SettingsStore = (*Store)(nil)

// NewStore creates a settings store rooted at path.
func NewStore(path string, vault Vault, envToken string, logger ports.Logger) *Store {
	return &Store{path: path, vault: vault, envToken: envToken, logger: logger}
}

// Path returns the settings file location.
func (s *Store) Path() string { return s.path }

// Load reads the settings. A missing file yields defaults.
func (s *Store) Load(ctx context.Context) (model.Settings, error) {
	var onDisk fileSettings

	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return model.Settings{}, fmt.Errorf("read settings: %w", err)
	default:
		if err := yaml.Unmarshal(data, &onDisk); err != nil {
			return model.Settings{}, fmt.Errorf("decode settings %s: %w", s.path, err)
		}
	}

	token, err := s.token()
	if err != nil {
		return model.Settings{}, err
	}

	settings := model.Settings{
		Token:        token,
		Repository:   onDisk.Repository,
		Branch:       onDisk.Branch,
		Organization: model.ParsePolicy(onDisk.Organization),
	}
	return settings.WithDefaults(), nil
}

// Save validates and writes the settings.
func (s *Store) Save(ctx context.Context, settings model.Settings) error {
	settings = settings.WithDefaults()
	if err := settings.Validate(); err != nil {
		return err
	}

	// A token taken from the environment is never copied into the vault.
	if s.envToken == "" || settings.Token != s.envToken {
		if err := s.vault.Set(settings.Token); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(fileSettings{
		Repository:   settings.Repository,
		Branch:       settings.Branch,
		Organization: string(settings.Organization),
	})
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	if s.logger != nil {
		s.logger.Info(ctx, "settings saved", "path", s.path, "repository", settings.Repository)
	}
	return nil
}

func (s *Store) token() (string, error) {
	if s.envToken != "" {
		return s.envToken, nil
	}
	if s.vault == nil {
		return "", nil
	}
	return s.vault.Get()
}

// TokenSource adapts the store to oauth2 so HTTP clients pick up the saved token.
func (s *Store) TokenSource() oauth2.TokenSource {
	return storeTokenSource{store: s}
}

type storeTokenSource struct {
	store *Store
}

func (ts storeTokenSource) Token() (*oauth2.Token, error) {
	token, err := ts.store.token()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, fmt.Errorf("%w: no GitHub token configured", model.ErrInvalidSettings)
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}
