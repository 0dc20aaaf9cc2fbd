package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	sessionPathKey  = "session.path"
	sessionFileMode = 0o600
	sessionDirMode  = 0o700
	configDir       = ".resx"
	sessionFile     = "session.toml"
	tempFilePattern = ".session-*.toml.tmp"

	currentSchemaVersion = 1
)

type fileSchema struct {
	Version  int            `toml:"version"`
	Identity identitySchema `toml:"identity"`
}

type identitySchema struct {
	ID       string `toml:"id"`
	FullName string `toml:"full_name"`
	Email    string `toml:"email"`
	Role     string `toml:"role"`
	Token    string `toml:"token"`
}

// Store caches the identity between CLI invocations. The cache holds the
// bearer token, so the file and its directory stay private to the user.
type Store struct {
	path string
}

var _ ports.SessionStore = (*Store)(nil)

// NewStore resolves the session path through viper so a config file under
// the user's config dir can relocate it.
func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, configDir, sessionFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(sessionPathKey, defaultPath)

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	path := cfg.GetString(sessionPathKey)
	if path == "" {
		return nil, errors.New("session path is empty")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve session path: %w", err)
	}

	return &Store{path: filepath.Clean(absPath)}, nil
}

func (s *Store) Load(ctx context.Context) (domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Identity{}, domain.ErrNoSession
		}
		return domain.Identity{}, fmt.Errorf("read session file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Identity{}, fmt.Errorf("decode session file: %w", err)
	}
	if file.Version > currentSchemaVersion {
		return domain.Identity{}, fmt.Errorf("unsupported session schema version %d (current %d)", file.Version, currentSchemaVersion)
	}
	if file.Identity.Token == "" {
		return domain.Identity{}, domain.ErrNoSession
	}

	return domain.Identity{
		ID:       domain.UserID(file.Identity.ID),
		FullName: file.Identity.FullName,
		Email:    file.Identity.Email,
		Role:     domain.Role(file.Identity.Role),
		Token:    file.Identity.Token,
	}, nil
}

func (s *Store) Save(ctx context.Context, identity domain.Identity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file := fileSchema{
		Version: currentSchemaVersion,
		Identity: identitySchema{
			ID:       string(identity.ID),
			FullName: identity.FullName,
			Email:    identity.Email,
			Role:     string(identity.Role),
			Token:    identity.Token,
		},
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}
	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("set session file mode: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	cleanup = false

	return nil
}

// Clear removes the cached session. Clearing an absent cache is a no-op, so
// logout stays idempotent across processes.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete session file: %w", err)
	}

	return nil
}
