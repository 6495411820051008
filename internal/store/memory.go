package store

import (
	"context"
	"sync"

	"rentapi/internal/models"

	"github.com/google/uuid"
)

// Memory is a process-local Store backed by ordered slices.
// Nothing survives a restart.
type Memory struct {
	mu         sync.RWMutex
	properties []*models.Property
	tenants    []*models.Tenant
	newID      func() string
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{newID: uuid.NewString}
}

// Reset drops every stored record.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.properties = nil
	m.tenants = nil
}

func (m *Memory) Close() error { return nil }

// ========== Property ==========

func (m *Memory) InsertProperty(_ context.Context, p *models.Property) (string, error) {
	rec := p.Clone()

	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = m.newID()
	m.properties = append(m.properties, rec)
	return rec.ID, nil
}

func (m *Memory) FindProperty(_ context.Context, id string) (*models.Property, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.propertyIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return m.properties[i].Clone(), nil
}

func (m *Memory) UpdateProperty(_ context.Context, id string, p *models.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.propertyIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	rec := p.Clone()
	rec.BaseModel = m.properties[i].BaseModel
	m.properties[i] = rec
	return nil
}

func (m *Memory) DeleteProperty(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.propertyIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	m.properties = append(m.properties[:i], m.properties[i+1:]...)
	return nil
}

func (m *Memory) FindAllProperties(_ context.Context) ([]*models.Property, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Property, 0, len(m.properties))
	for _, p := range m.properties {
		out = append(out, p.Clone())
	}
	return out, nil
}

// caller must hold mu
func (m *Memory) propertyIndex(id string) int {
	for i, p := range m.properties {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// ========== Tenant ==========

func (m *Memory) InsertTenant(_ context.Context, t *models.Tenant) (string, error) {
	rec := t.Clone()

	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = m.newID()
	m.tenants = append(m.tenants, rec)
	return rec.ID, nil
}

func (m *Memory) FindTenant(_ context.Context, id string) (*models.Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.tenantIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return m.tenants[i].Clone(), nil
}

func (m *Memory) UpdateTenant(_ context.Context, id string, t *models.Tenant) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.tenantIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	rec := t.Clone()
	rec.BaseModel = m.tenants[i].BaseModel
	m.tenants[i] = rec
	return nil
}

func (m *Memory) DeleteTenant(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.tenantIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	m.tenants = append(m.tenants[:i], m.tenants[i+1:]...)
	return nil
}

func (m *Memory) FindAllTenants(_ context.Context) ([]*models.Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Tenant, 0, len(m.tenants))
	for _, t := range m.tenants {
		out = append(out, t.Clone())
	}
	return out, nil
}

// caller must hold mu
func (m *Memory) tenantIndex(id string) int {
	for i, t := range m.tenants {
		if t.ID == id {
			return i
		}
	}
	return -1
}
