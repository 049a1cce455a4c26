package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Тип занятости в заявке.
type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeOneTime  JobType = "one-time"
)

// KnownJobTypes — допустимые значения типа занятости.
var KnownJobTypes = map[JobType]bool{
	JobTypeFullTime: true,
	JobTypePartTime: true,
	JobTypeContract: true,
	JobTypeOneTime:  true,
}

// JobCategory — требуемый тип рабочих с количеством внутри заявки.
type JobCategory struct {
	Category Specialization `json:"category"`
	Count    int            `json:"count"`
}

// job_requests — заявка заказчика на рабочую силу.
//
// Расписание задаётся в одной из двух взаимоисключающих форм:
//   - простая: Duration (свободный текст) + опциональные Budget и Deadline;
//   - детальная: StartDate, StartTime ("HH:00"), HoursPerDay (1–12),
//     NumberOfDays (>= 1).
type JobRequest struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Title    string  `gorm:"type:varchar(255);not null" json:"title"`
	Location string  `gorm:"type:varchar(255);not null" json:"location"`
	JobType  JobType `gorm:"type:varchar(32);not null;index" json:"job_type"`

	Duration string          `gorm:"type:varchar(255)" json:"duration,omitempty"`
	Budget   string          `gorm:"type:varchar(255)" json:"budget,omitempty"`
	Deadline *datatypes.Date `gorm:"type:date" json:"deadline,omitempty"`

	StartDate    *datatypes.Date `gorm:"type:date" json:"start_date,omitempty"`
	StartTime    string          `gorm:"type:varchar(8)" json:"start_time,omitempty"`
	HoursPerDay  int             `json:"hours_per_day,omitempty"`
	NumberOfDays int             `json:"number_of_days,omitempty"`

	// Общее количество рабочих. При наличии Categories всегда равно
	// сумме Count по категориям (пересчитывается при создании).
	Workers int `gorm:"not null" json:"workers"`

	Categories datatypes.JSONSlice[JobCategory] `json:"categories,omitempty"`

	Description string `gorm:"type:text;not null" json:"description"`
	ContactInfo string `gorm:"type:varchar(255);not null" json:"contact_info"`

	// Владелец заявки. После создания не меняется.
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quotes []Quote `gorm:"foreignKey:JobRequestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
