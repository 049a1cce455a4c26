package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Specialization — тег типа рабочих, которых поставляет провайдер.
type Specialization string

const (
	SpecializationWelder      Specialization = "welder"
	SpecializationFitter      Specialization = "fitter"
	SpecializationHelper      Specialization = "helper"
	SpecializationPacker      Specialization = "packer"
	SpecializationMachinist   Specialization = "machinist"
	SpecializationElectrician Specialization = "electrician"
	SpecializationPlumber     Specialization = "plumber"
	SpecializationCarpenter   Specialization = "carpenter"
)

// KnownSpecializations — допустимые значения тегов специализации.
var KnownSpecializations = map[Specialization]bool{
	SpecializationWelder:      true,
	SpecializationFitter:      true,
	SpecializationHelper:      true,
	SpecializationPacker:      true,
	SpecializationMachinist:   true,
	SpecializationElectrician: true,
	SpecializationPlumber:     true,
	SpecializationCarpenter:   true,
}

// Provider — компания-поставщик рабочей силы.
// Профиль один на пользователя: ID всегда равен UserID владельца.
type Provider struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Внешний ключ на таблицу пользователей. Дублирует ID, но хранится
	// отдельно: по наличию строки с этим UserID решается вопрос
	// "является ли пользователь провайдером".
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	CompanyName   string `gorm:"type:varchar(255);not null" json:"company_name"`
	ContactPerson string `gorm:"type:varchar(255);not null" json:"contact_person"`
	Phone         string `gorm:"type:varchar(32);not null" json:"phone"`
	Email         string `gorm:"type:varchar(255);not null" json:"email"`
	Address       string `gorm:"type:text;not null" json:"address"`
	Description   string `gorm:"type:text;not null" json:"description"`

	// Непустой набор тегов специализации, хранится как JSON-массив.
	Specialization datatypes.JSONSlice[Specialization] `gorm:"not null" json:"specialization"`

	YearsInBusiness int `gorm:"not null" json:"years_in_business"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quotes []Quote `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
