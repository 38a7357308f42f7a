// Package session persists the client's view of its login state. It is
// a UI convenience only; the token is the actual security boundary.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type state struct {
	LoggedIn bool   `json:"logged_in"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// Session holds the persisted login state. Transitions are explicit:
// LogIn on a successful register/login, LogOut on the logout action.
type Session struct {
	path  string
	state state
}

// DefaultPath returns the session file location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".authsvc", "session.json"), nil
}

// Load reads the session file at path. A missing file yields a
// logged-out session, not an error.
func Load(path string) (*Session, error) {
	s := &Session{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &s.state); err != nil {
		return nil, err
	}

	return s, nil
}

// LogIn records a successful authentication and persists it.
func (s *Session) LogIn(email, token string) error {
	s.state = state{LoggedIn: true, Email: email, Token: token}
	return s.save()
}

// LogOut resets the state and wipes the stored token, then persists.
func (s *Session) LogOut() error {
	s.state = state{}
	return s.save()
}

func (s *Session) LoggedIn() bool { return s.state.LoggedIn }
func (s *Session) Email() string  { return s.state.Email }
func (s *Session) Token() string  { return s.state.Token }

func (s *Session) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0600)
}
