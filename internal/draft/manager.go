// Package draft owns the in-progress transaction form state: the session
// store keyed by draft id, the advance-request-number lifecycle, and the
// snapshot sink used for crash recovery.
package draft

import (
	"sync"

	"github.com/google/uuid"

	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
	"fleetops/internal/utils"
)

// SnapshotSink persists whole-draft snapshots so an unsaved form survives
// a crash. It is a collaborator of the computation core, not part of it;
// sinks may be backed by MySQL or by nothing at all.
type SnapshotSink interface {
	Save(d models.TransactionDraft) error
	Load(id string) (models.TransactionDraft, error)
	Delete(id string) error
}

// Manager stores active drafts by id. The system is single-user per
// draft; the lock only guards the map against concurrent HTTP handlers.
type Manager struct {
	mu     sync.RWMutex
	drafts map[string]*models.TransactionDraft

	// NewID is injectable for deterministic tests; defaults to uuid.
	NewID func() string
}

func NewManager() *Manager {
	return &Manager{drafts: map[string]*models.TransactionDraft{}}
}

// Create registers an empty draft in the given mode.
func (m *Manager) Create(mode models.TransactionMode) (*models.TransactionDraft, error) {
	if !mode.Valid() {
		return nil, domain.ValidationError{Field: "mode", Msg: "must be fixed, adhoc or replacement"}
	}

	id := ""
	if m.NewID != nil {
		id = m.NewID()
	} else {
		id = uuid.NewString()
	}

	now := utils.NowLocal()
	d := &models.TransactionDraft{
		ID:        id,
		Mode:      mode,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.drafts[id] = d
	m.mu.Unlock()
	return d, nil
}

// Get returns the active draft or a NotFoundError.
func (m *Manager) Get(id string) (*models.TransactionDraft, error) {
	m.mu.RLock()
	d, ok := m.drafts[id]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.NotFoundError{Resource: "draft"}
	}
	return d, nil
}

// Put registers a restored draft under its own id.
func (m *Manager) Put(d *models.TransactionDraft) {
	m.mu.Lock()
	m.drafts[d.ID] = d
	m.mu.Unlock()
}

// Delete discards a draft. Deleting an unknown id is a no-op.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.drafts, id)
	m.mu.Unlock()
}
