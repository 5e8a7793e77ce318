package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Event describes a change to the stored session
type Event int

const (
	// EventSaved fires after a session was persisted
	EventSaved Event = iota
	// EventCleared fires after the session was removed
	EventCleared
)

// Store persists the session as a single JSON file. Token and profile are
// written atomically (temp file + rename) so a partial session can never be
// observed, and every change notifies subscribers.
type Store struct {
	path string

	mu   sync.Mutex
	subs []chan Event
}

// DefaultPath returns the session file location under the user's home
// directory
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".tybot", "session.json"), nil
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Save persists the session. It rejects sessions that would violate the
// token-present ⇔ profile-present invariant.
func (s *Store) Save(sess Session) error {
	if sess.AccessToken == "" {
		return fmt.Errorf("refusing to save session without access token")
	}
	if sess.User.Email == "" && sess.User.ID == 0 {
		return fmt.Errorf("refusing to save session without user profile")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Write to a temp file in the same directory, then rename over the
	// target so readers never see a half-written session.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to set session file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close session file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.notify(EventSaved)
	return nil
}

// Load returns the stored session, or nil when no session exists. A session
// missing its token is treated as absent rather than returned inconsistent.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}

	if sess.AccessToken == "" {
		return nil, nil
	}

	return &sess, nil
}

// Clear removes the stored session. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove session: %w", err)
	}

	s.notify(EventCleared)
	return nil
}

// Token returns the current access token, or empty when no session exists.
// It re-reads the store on every call so callers never act on a token that
// was cleared after they were constructed.
func (s *Store) Token() string {
	sess, err := s.Load()
	if err != nil || sess == nil {
		return ""
	}
	return sess.AccessToken
}

// Subscribe returns a channel that receives an Event after every Save or
// Clear. The channel is buffered; slow consumers drop events rather than
// block the writer.
func (s *Store) Subscribe() <-chan Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Event, 4)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *Store) notify(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
