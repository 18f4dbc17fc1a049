package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogModel maps to the blogs table.
type BlogModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"column:title;size:200;not null"`
	Body      string    `gorm:"column:body;type:text;not null"`
	Published bool      `gorm:"column:published;not null;default:true"`
	AuthorID  uuid.UUID `gorm:"column:author_id;type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default table name.
func (BlogModel) TableName() string {
	return "blogs"
}
