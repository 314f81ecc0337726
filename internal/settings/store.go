package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bytedance/sonic"

	"github.com/mexicanamerican/agent-zero/internal/secrets"
)

// Store persists the settings record as a pretty-printed JSON document,
// redirecting secret-bearing fields to the secret store so the file never
// contains secret material.
type Store struct {
	path    string
	secrets SecretStore
	env     Environment
}

// NewStore creates a store writing to path with the given collaborators.
func NewStore(path string, sec SecretStore, env Environment) *Store {
	return &Store{path: path, secrets: sec, env: env}
}

// Load reads and normalizes the persisted record. A missing file is not an
// error: it returns ok=false and the caller falls back to defaults. A file
// that exists but does not parse is returned as an error.
func (s *Store) Load() (Settings, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Settings{}, false, nil
	}
	if err != nil {
		return Settings{}, false, fmt.Errorf("read settings file: %w", err)
	}

	var raw map[string]any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return Settings{}, false, fmt.Errorf("parse settings file %s: %w", s.path, err)
	}
	return Normalize(raw), true, nil
}

// Save writes the record. Secrets are extracted to the secret store first,
// then zeroed in the copy written to disk; a crash between the two steps can
// lose the JSON snapshot but never leak a secret into it.
func (s *Store) Save(set Settings) error {
	if err := s.writeSecrets(set); err != nil {
		return err
	}

	sanitized := set
	sanitized.APIKeys = map[string]string{}
	sanitized.AuthLogin = ""
	sanitized.AuthPassword = ""
	sanitized.RFCPassword = ""
	sanitized.RootPassword = ""

	data, err := sonic.MarshalIndent(sanitized, "", "    ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func (s *Store) writeSecrets(set Settings) error {
	providers := make([]string, 0, len(set.APIKeys))
	for p := range set.APIKeys {
		providers = append(providers, p)
	}
	sort.Strings(providers)
	for _, p := range providers {
		if set.APIKeys[p] == "" {
			continue
		}
		if err := s.secrets.Set(secrets.APIKeyName(p), set.APIKeys[p]); err != nil {
			return err
		}
	}

	if err := s.secrets.Set(secrets.KeyAuthLogin, set.AuthLogin); err != nil {
		return err
	}
	if set.AuthPassword != "" {
		if err := s.secrets.Set(secrets.KeyAuthPassword, set.AuthPassword); err != nil {
			return err
		}
	}
	if set.RFCPassword != "" {
		if err := s.secrets.Set(secrets.KeyRFCPassword, set.RFCPassword); err != nil {
			return err
		}
	}
	if set.RootPassword != "" {
		if err := s.secrets.Set(secrets.KeyRootPassword, set.RootPassword); err != nil {
			return err
		}
		if err := s.env.SetRootPassword(set.RootPassword); err != nil {
			return err
		}
	}
	return nil
}
