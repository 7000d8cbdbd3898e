package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/jrsteele09/go-shop-client/credentials"
	"github.com/jrsteele09/go-shop-client/users"
	"github.com/pkg/errors"
)

const (
	credentialsFile = "credentials.json"
	profileFile     = "current_user.json"
)

var _ credentials.Store = (*FileStore)(nil)

// FileStore persists the token pair and cached profile as JSON files
// under a data folder, so a CLI session survives process restarts.
type FileStore struct {
	lock        sync.Mutex
	credsPath   string
	profilePath string
}

// New creates a FileStore rooted at dataFolder, creating the folder if
// required.
func New(dataFolder string) (*FileStore, error) {
	if err := os.MkdirAll(dataFolder, 0o700); err != nil {
		return nil, errors.Wrap(err, "[filestore.New] MkdirAll")
	}
	return &FileStore{
		credsPath:   filepath.Join(dataFolder, credentialsFile),
		profilePath: filepath.Join(dataFolder, profileFile),
	}, nil
}

func (s *FileStore) Save(creds credentials.Credentials) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[FileStore.Save] MarshalIndent")
	}
	if err := os.WriteFile(s.credsPath, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.Save] WriteFile")
	}
	return nil
}

func (s *FileStore) Get() (*credentials.Credentials, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	data, err := os.ReadFile(s.credsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "[FileStore.Get] ReadFile")
	}
	var creds credentials.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		// Corrupt record - read as logged out rather than wedging the
		// client; the next login rewrites it.
		return nil, nil
	}
	if creds.AccessToken == "" && creds.RefreshToken == "" {
		return nil, nil
	}
	return &creds, nil
}

func (s *FileStore) Clear() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, path := range []string{s.credsPath, s.profilePath} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "[FileStore.Clear] Remove")
		}
	}
	return nil
}

func (s *FileStore) SaveProfile(user *users.User) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[FileStore.SaveProfile] MarshalIndent")
	}
	if err := os.WriteFile(s.profilePath, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.SaveProfile] WriteFile")
	}
	return nil
}

func (s *FileStore) Profile() (*users.User, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	data, err := os.ReadFile(s.profilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "[FileStore.Profile] ReadFile")
	}
	var user users.User
	if err := json.Unmarshal(data, &user); err != nil {
		// Corrupt cached profile - treat as absent rather than failing
		// the caller; the next /auth/me fetch rewrites it.
		return nil, nil
	}
	return &user, nil
}
