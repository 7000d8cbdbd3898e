package memstore

import (
	"encoding/json"
	"sync"

	"github.com/jrsteele09/go-shop-client/credentials"
	"github.com/jrsteele09/go-shop-client/users"
)

var _ credentials.Store = (*MemStore)(nil)

// MemStore keeps the token pair and cached profile in process memory.
// Used by tests and by callers that do not want tokens to outlive the
// process.
type MemStore struct {
	lock    sync.RWMutex
	creds   *credentials.Credentials
	profile []byte // serialized, mirroring the persistent store's record
}

func New() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Save(creds credentials.Credentials) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.creds = &creds
	return nil
}

func (m *MemStore) Get() (*credentials.Credentials, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if m.creds == nil {
		return nil, nil
	}
	c := *m.creds
	return &c, nil
}

func (m *MemStore) Clear() error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.creds = nil
	m.profile = nil
	return nil
}

func (m *MemStore) SaveProfile(user *users.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	m.profile = data
	return nil
}

func (m *MemStore) Profile() (*users.User, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if len(m.profile) == 0 {
		return nil, nil
	}
	var user users.User
	if err := json.Unmarshal(m.profile, &user); err != nil {
		// Corrupt record - treat as absent.
		return nil, nil
	}
	return &user, nil
}

// SetRawProfile overwrites the serialized profile record directly.
// Exists so tests can simulate a corrupt persisted record.
func (m *MemStore) SetRawProfile(data []byte) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.profile = data
}
