package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"rentapi/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gorm is a Store backed by a SQL database through gorm.
type Gorm struct {
	db *gorm.DB

	mu    sync.Mutex
	last  int64 // 最近一次写入的 created_at
	clock func() time.Time
}

var _ Store = (*Gorm)(nil)

// NewGorm wraps db. The tables must already exist, see AutoMigrate.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db, clock: time.Now}
}

// AutoMigrate creates or updates the properties and tenants tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Property{}, &models.Tenant{})
}

// stamp returns a strictly increasing created_at so listing by it follows
// insertion order even when two inserts share a clock tick.
func (g *Gorm) stamp() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.clock().UnixNano()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	return now
}

func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ========== Property ==========

func (g *Gorm) InsertProperty(ctx context.Context, p *models.Property) (string, error) {
	rec := p.Clone()
	rec.ID = uuid.NewString()
	rec.CreatedAt = g.stamp()
	if err := g.db.WithContext(ctx).Create(rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (g *Gorm) FindProperty(ctx context.Context, id string) (*models.Property, error) {
	var p models.Property
	if err := g.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (g *Gorm) UpdateProperty(ctx context.Context, id string, p *models.Property) error {
	// 用 map 更新，false / 0 等零值也会写入
	res := g.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":         p.Name,
			"address":      p.Address,
			"rent":         p.Rent,
			"is_available": p.IsAvailable,
		})
	return rowsOrNotFound(res)
}

func (g *Gorm) DeleteProperty(ctx context.Context, id string) error {
	res := g.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Property{})
	return rowsOrNotFound(res)
}

func (g *Gorm) FindAllProperties(ctx context.Context) ([]*models.Property, error) {
	properties := make([]*models.Property, 0)
	err := g.db.WithContext(ctx).Order("created_at, id").Find(&properties).Error
	return properties, err
}

// ========== Tenant ==========

func (g *Gorm) InsertTenant(ctx context.Context, t *models.Tenant) (string, error) {
	rec := t.Clone()
	rec.ID = uuid.NewString()
	rec.CreatedAt = g.stamp()
	if err := g.db.WithContext(ctx).Create(rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (g *Gorm) FindTenant(ctx context.Context, id string) (*models.Tenant, error) {
	var t models.Tenant
	if err := g.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (g *Gorm) UpdateTenant(ctx context.Context, id string, t *models.Tenant) error {
	res := g.db.WithContext(ctx).
		Model(&models.Tenant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        t.Name,
			"email":       t.Email,
			"phone":       t.Phone,
			"property_id": t.PropertyID,
		})
	return rowsOrNotFound(res)
}

func (g *Gorm) DeleteTenant(ctx context.Context, id string) error {
	res := g.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Tenant{})
	return rowsOrNotFound(res)
}

func (g *Gorm) FindAllTenants(ctx context.Context) ([]*models.Tenant, error) {
	tenants := make([]*models.Tenant, 0)
	err := g.db.WithContext(ctx).Order("created_at, id").Find(&tenants).Error
	return tenants, err
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func rowsOrNotFound(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
