// Package session holds the authenticated admin session: the bearer token
// and the UI locale. Both are persisted so the CLI survives restarts; the
// token is evicted on 401 or explicit logout.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale has been chosen or the stored one
// is not supported.
const DefaultLocale = "en"

var supported = language.NewMatcher([]language.Tag{
	language.English, // en, the fallback
	language.Azerbaijani,
	language.Russian,
})

// Session is the explicit session context injected into the transport
// client. Safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	path   string
	token  string
	locale string
}

type sessionFile struct {
	Token  string `json:"token,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// Load reads the session file at path, returning an empty session when the
// file does not exist yet.
func Load(path string) (*Session, error) {
	s := &Session{path: path, locale: DefaultLocale}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}

	s.token = f.Token
	s.locale = CanonicalLocale(f.Locale)
	return s, nil
}

// CanonicalLocale maps an arbitrary locale string onto one of the
// supported codes (az, en, ru), defaulting to en.
func CanonicalLocale(locale string) string {
	if locale == "" {
		return DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultLocale
	}
	_, idx, conf := supported.Match(tag)
	if conf == language.No {
		return DefaultLocale
	}
	switch idx {
	case 1:
		return "az"
	case 2:
		return "ru"
	default:
		return DefaultLocale
	}
}

// Token returns the stored bearer token, empty when not logged in.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Locale returns the stored locale, always one of az/en/ru.
func (s *Session) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.locale == "" {
		return DefaultLocale
	}
	return s.locale
}

// SetToken stores the bearer token and persists the session.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return s.save()
}

// SetLocale stores the locale (canonicalized) and persists the session.
func (s *Session) SetLocale(locale string) error {
	s.mu.Lock()
	s.locale = CanonicalLocale(locale)
	s.mu.Unlock()
	return s.save()
}

// Clear evicts the token, keeping the locale. Called on 401 and logout.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return s.save()
}

func (s *Session) save() error {
	s.mu.RLock()
	f := sessionFile{Token: s.token, Locale: s.locale}
	path := s.path
	s.mu.RUnlock()

	if path == "" {
		return nil // in-memory session (tests)
	}

	data, err := json.MarshalIndent(&f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
