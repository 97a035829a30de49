package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"beaute-shop/models"
)

// CredentialStore persists the bearer tokens between calls, standing in for
// the browser's local storage. Set at login, cleared at logout.
type CredentialStore interface {
	Tokens() (models.TokenPair, bool)
	Save(tokens models.TokenPair) error
	Clear() error
}

type MemoryStore struct {
	mu     sync.RWMutex
	tokens models.TokenPair
	set    bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Tokens() (models.TokenPair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens, s.set
}

func (s *MemoryStore) Save(tokens models.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = tokens
	s.set = true
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = models.TokenPair{}
	s.set = false
	return nil
}

// FileStore keeps the tokens in a JSON file readable only by the owner.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Tokens() (models.TokenPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return models.TokenPair{}, false
	}

	var tokens models.TokenPair
	if err := json.Unmarshal(data, &tokens); err != nil || tokens.Access == "" {
		return models.TokenPair{}, false
	}
	return tokens, true
}

func (s *FileStore) Save(tokens models.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(tokens)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// TokenExpiry reads the exp claim without verifying the signature; the
// client only needs it to decide when to refresh, the server remains the
// authority on validity.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}
	return exp.Time, nil
}

// NeedsRefresh reports whether the access token expires within the leeway.
// Unparseable tokens count as expired.
func NeedsRefresh(token string, leeway time.Duration) bool {
	exp, err := TokenExpiry(token)
	if err != nil {
		return true
	}
	return time.Until(exp) < leeway
}
