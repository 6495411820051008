package models

// Tenant 租客模型
// PropertyID 不做外键约束，可以引用不存在的房产
type Tenant struct {
	BaseModel
	Name       string `json:"name" gorm:"not null"`
	Email      string `json:"email" gorm:"not null"`
	Phone      string `json:"phone" gorm:"not null"`
	PropertyID string `json:"property_id" gorm:"not null;index"`
}

// TableName 表名
func (t *Tenant) TableName() string {
	return "tenants"
}

// Clone 返回副本
func (t *Tenant) Clone() *Tenant {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
