package models

// ProjectModel stores personal projects.
type ProjectModel struct {
	Base
	Title        string      `gorm:"index;not null"`
	Technologies StringArray `gorm:"not null"`
	Description  StringArray `gorm:"not null"`
}

func (ProjectModel) TableName() string { return "projects" }
