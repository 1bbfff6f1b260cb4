package models

type ExperienceModel struct {
	Base
	Company     string      `gorm:"index;not null"`
	Role        string      `gorm:"not null"`
	Duration    string      `gorm:"not null"`
	Description StringArray `gorm:"not null"`
}

func (ExperienceModel) TableName() string { return "experience" }
