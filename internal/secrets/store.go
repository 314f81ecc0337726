package secrets

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Fixed keys for non-API-key secrets.
const (
	KeyAuthLogin    = "AUTH_LOGIN"
	KeyAuthPassword = "AUTH_PASSWORD"
	KeyRFCPassword  = "RFC_PASSWORD"
	KeyRootPassword = "ROOT_PASSWORD"
)

// APIKeyName returns the store key for a provider's API key.
func APIKeyName(provider string) string {
	return strings.ToUpper(provider)
}

// Store is an env-file-backed key/value secret store. Reads always hit the
// file, so external edits are picked up; writes upsert a single key and
// rewrite the file.
type Store struct {
	path string
}

// NewStore creates a store backed by the env file at path. The file need
// not exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for key, or false if the key or the file is absent.
func (s *Store) Get(key string) (string, bool) {
	env, err := godotenv.Read(s.path)
	if err != nil {
		return "", false
	}
	val, ok := env[key]
	return val, ok
}

// Set upserts a single key, preserving all other entries.
func (s *Store) Set(key, value string) error {
	env, err := godotenv.Read(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("read secret store: %w", err)
		}
		env = make(map[string]string)
	}
	env[key] = value
	if err := godotenv.Write(env, s.path); err != nil {
		return fmt.Errorf("write secret store: %w", err)
	}
	return nil
}
