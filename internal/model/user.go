package model

import (
	"time"

	"github.com/google/uuid"
)

// users
type User struct {
	// ID назначается сервисом при регистрации (uuid.New), а не БД,
	// чтобы схема одинаково работала на Postgres и SQLite.
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Email        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	FirstName string `gorm:"type:varchar(255)" json:"first_name"`
	LastName  string `gorm:"type:varchar(255)" json:"last_name"`
	Phone     string `gorm:"type:varchar(32)" json:"phone"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Навигационные поля (опционально)
	Provider *Provider `gorm:"foreignKey:UserID" json:"-"`
}
