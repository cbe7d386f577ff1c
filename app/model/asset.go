package model

import (
	"time"

	"github.com/google/uuid"
)

type Asset struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Category  string    `gorm:"size:50;not null" json:"category"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Condition string    `gorm:"size:50" json:"condition"`
	Location  string    `gorm:"size:100" json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Asset) TableName() string {
	return "aset"
}

type AssetDraft struct {
	Name      string `json:"name" validate:"required"`
	Category  string `json:"category" validate:"required,oneof=electronics furniture stationary"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Condition string `json:"condition"`
	Location  string `json:"location"`
}
