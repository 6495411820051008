package models

// Property 房产模型 - 贫血模型，只包含数据结构
type Property struct {
	BaseModel
	Name        string  `json:"name" gorm:"not null"`
	Address     string  `json:"address" gorm:"not null"`
	Rent        float64 `json:"rent" gorm:"not null"`
	IsAvailable bool    `json:"is_available" gorm:"not null"`
}

// TableName 表名
func (p *Property) TableName() string {
	return "properties"
}

// Clone 返回副本
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
