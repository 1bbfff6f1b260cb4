package models

import (
	"time"

	"gorm.io/gorm"
)

const singletonSlot = 1

// Base is the base model for all entities.
// IDs are auto-increment integers so list order follows insertion order.
type Base struct {
	ID        uint      `json:"id"       gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Singleton pins a table to at most one row. Slot is always 1 and uniquely
// indexed, so a second insert is rejected by the store itself.
type Singleton struct {
	Slot int `json:"-" gorm:"not null;default:1;uniqueIndex"`
}

func (s *Singleton) BeforeCreate(tx *gorm.DB) error {
	s.Slot = singletonSlot
	return nil
}

// All returns every model that belongs to the schema, in migration order.
func All() []interface{} {
	return []interface{}{
		&ProfileModel{},
		&EducationModel{},
		&ExperienceModel{},
		&ProjectModel{},
		&SkillCategoryModel{},
		&CertificationModel{},
	}
}
