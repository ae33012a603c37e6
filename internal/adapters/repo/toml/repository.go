package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	savePathKey     = "save.path"
	saveFileMode    = 0o600
	saveDirMode     = 0o700
	configDir       = ".netrun"
	saveFile        = "save.toml"
	tempFilePattern = ".save-*.toml.tmp"
)

// SessionRepository persists terminal state to a TOML save file.
type SessionRepository struct {
	savePath string
	mu       *sync.RWMutex
	now      func() time.Time
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionRepository = (*SessionRepository)(nil)

// ConfigDir returns the directory holding config.toml and the default data
// files.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, configDir), nil
}

// ReadConfig points cfg at config.toml and reads it when present.
func ReadConfig(cfg *viper.Viper) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetDefault(savePathKey, filepath.Join(dir, saveFile))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}
	return nil
}

func NewSessionRepository(cfg *viper.Viper) (*SessionRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if err := ReadConfig(cfg); err != nil {
		return nil, err
	}

	savePath := cfg.GetString(savePathKey)
	if savePath == "" {
		return nil, errors.New("save path is empty")
	}
	savePath, err := normalizePath(savePath)
	if err != nil {
		return nil, err
	}

	return &SessionRepository{savePath: savePath, mu: lockForPath(savePath), now: time.Now}, nil
}

func (r *SessionRepository) Path() string {
	return r.savePath
}

// Load returns the saved terminal state, or the zero state when no save
// file exists yet.
func (r *SessionRepository) Load(ctx context.Context) (domain.TerminalState, error) {
	if err := ctx.Err(); err != nil {
		return domain.TerminalState{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.TerminalState{}, err
	}

	return domain.TerminalState{
		History:          append([]string(nil), file.Terminal.History...),
		CurrentDirectory: file.Terminal.CurrentDirectory,
	}, nil
}

func (r *SessionRepository) Save(ctx context.Context, state domain.TerminalState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	file.SavedAt = formatTime(r.now())
	file.Terminal = terminalSchema{
		History:          append([]string(nil), state.History...),
		CurrentDirectory: state.CurrentDirectory,
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return r.writeSchema(file)
}

func (r *SessionRepository) readSchema() (saveSchema, error) {
	data, err := os.ReadFile(r.savePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := saveSchema{}
			file.applyDefaults()
			return file, nil
		}
		return saveSchema{}, fmt.Errorf("read save file: %w", err)
	}

	var file saveSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return saveSchema{}, fmt.Errorf("decode save file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return saveSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve save path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *SessionRepository) writeSchema(file saveSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.savePath), saveDirMode); err != nil {
		return fmt.Errorf("create save directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode save file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.savePath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp save file: %w", err)
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
		return fmt.Errorf("write temp save file: %w", err)
	}

	if err := tempFile.Chmod(saveFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp save file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp save file: %w", err)
	}

	if err := os.Rename(tempName, r.savePath); err != nil {
		return fmt.Errorf("replace save file: %w", err)
	}

	cleanup = false
	return nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
