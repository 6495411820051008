package models

// BaseModel 基础模型，ID 由存储层生成
type BaseModel struct {
	ID        string `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt int64  `json:"-" gorm:"autoCreateTime:nano;index"` // 列表按插入顺序返回
}
