package model

import (
	"time"

	"github.com/google/uuid"
)

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// quotes — предложение провайдера по конкретной заявке.
type Quote struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	JobRequestID int64     `gorm:"not null;index" json:"job_request_id"`
	ProviderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"provider_id"`

	// Сумма хранится как строка для отображения ("₹22,000 per worker"),
	// числового разбора нигде нет.
	Amount   string `gorm:"type:varchar(255);not null" json:"amount"`
	Timeline string `gorm:"type:varchar(255);not null" json:"timeline"`
	Comments string `gorm:"type:text;not null" json:"comments"`

	// pending при создании; accepted/rejected — терминальные.
	Status QuoteStatus `gorm:"type:varchar(32);not null;index" json:"status"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`

	// Навигационные поля для Preload.
	JobRequest *JobRequest `gorm:"foreignKey:JobRequestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"job_request,omitempty"`
	Provider   *Provider   `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"provider,omitempty"`
}
