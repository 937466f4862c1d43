// Package toml stores the configured listener account in a TOML file
// under the user's config directory. The listener's password never lands
// here; the record only carries a reference into the secret store.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/tunerlab/pandora-cli/internal/domain"
	"github.com/tunerlab/pandora-cli/internal/ports"
)

const (
	configName         = "config"
	configType         = "toml"
	listenerPathKey    = "listener.path"
	listenerFileMode   = 0o600
	listenerDirMode    = 0o700
	listenerConfigDir  = ".pandora"
	listenerConfigFile = "listener.toml"
	tempFilePattern    = ".listener-*.toml.tmp"
)

type Repository struct {
	listenerPath string
	mu           *sync.RWMutex
}

// Concurrent Repository instances pointing at the same file share one
// lock, so a Save in one cannot tear a Get in another.
var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ListenerRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, listenerConfigDir, listenerConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, listenerConfigDir))
	cfg.SetDefault(listenerPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	listenerPath := cfg.GetString(listenerPathKey)
	if listenerPath == "" {
		return nil, errors.New("listener path is empty")
	}
	listenerPath, err = normalizeListenerPath(listenerPath)
	if err != nil {
		return nil, err
	}

	return &Repository{listenerPath: listenerPath, mu: lockForPath(listenerPath)}, nil
}

func (r *Repository) Get(ctx context.Context) (domain.Listener, error) {
	if err := ctx.Err(); err != nil {
		return domain.Listener{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Listener{}, err
	}

	if file.Listener == nil {
		return domain.Listener{}, domain.ErrListenerNotFound
	}

	return fromSchema(*file.Listener), nil
}

func (r *Repository) Save(ctx context.Context, listener domain.Listener) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	encoded := toSchema(listener)
	file.Listener = &encoded

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	if file.Listener == nil {
		return domain.ErrListenerNotFound
	}

	file.applyDefaults()
	file.Listener = nil

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.listenerPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read listener file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode listener file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeListenerPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve listener path: %w", err)
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

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.listenerPath), listenerDirMode); err != nil {
		return fmt.Errorf("create listener directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode listener file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.listenerPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp listener file: %w", err)
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
		return fmt.Errorf("write temp listener file: %w", err)
	}

	if err := tempFile.Chmod(listenerFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp listener file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp listener file: %w", err)
	}

	if err := os.Rename(tempName, r.listenerPath); err != nil {
		return fmt.Errorf("replace listener file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.listenerPath, listenerFileMode); err != nil {
		return fmt.Errorf("chmod listener file: %w", err)
	}

	return nil
}

func toSchema(listener domain.Listener) listenerSchema {
	return listenerSchema{
		Username:  listener.Username,
		Device:    string(listener.Device),
		SecretRef: listener.SecretRef,
	}
}

func fromSchema(listener listenerSchema) domain.Listener {
	device := domain.DeviceKind(listener.Device)
	if listener.Device == "" {
		device = domain.DefaultProfile().Device
	}

	return domain.Listener{
		Username:  listener.Username,
		Device:    device,
		SecretRef: listener.SecretRef,
	}
}
