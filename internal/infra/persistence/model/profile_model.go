// Package model contains the GORM persistence models. They mirror the
// database schema and are mapped to pure domain entities at the
// repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel maps to the profiles table. The primary key is the
// identity id assigned by the external auth provider, not generated
// locally.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Username  string    `gorm:"column:username;size:50;not null"`
	Email     string    `gorm:"column:email;size:255;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName overrides the default table name.
func (ProfileModel) TableName() string {
	return "profiles"
}
