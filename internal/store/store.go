// Package store holds the property and tenant collections.
//
// Stores never validate what they are given; callers are expected to have
// run the validation package first.
package store

import (
	"context"
	"errors"

	"rentapi/internal/models"
)

// ErrNotFound is returned when an id does not resolve to a stored record.
var ErrNotFound = errors.New("record not found")

// PropertyStore defines the property operations.
type PropertyStore interface {
	// InsertProperty assigns a fresh id to p, stores it and returns the id.
	InsertProperty(ctx context.Context, p *models.Property) (string, error)
	FindProperty(ctx context.Context, id string) (*models.Property, error)
	// UpdateProperty replaces every business field of the record with id.
	UpdateProperty(ctx context.Context, id string, p *models.Property) error
	DeleteProperty(ctx context.Context, id string) error
	// FindAllProperties returns records in insertion order.
	FindAllProperties(ctx context.Context) ([]*models.Property, error)
}

// TenantStore defines the tenant operations.
type TenantStore interface {
	InsertTenant(ctx context.Context, t *models.Tenant) (string, error)
	FindTenant(ctx context.Context, id string) (*models.Tenant, error)
	UpdateTenant(ctx context.Context, id string, t *models.Tenant) error
	DeleteTenant(ctx context.Context, id string) error
	FindAllTenants(ctx context.Context) ([]*models.Tenant, error)
}

// Store is the full storage surface used by the services.
type Store interface {
	PropertyStore
	TenantStore

	// Close releases any resources held by the store.
	Close() error
}
