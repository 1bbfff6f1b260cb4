package models

// EducationModel is the single education entry shown on the portfolio.
type EducationModel struct {
	Base
	Singleton
	Institution string  `gorm:"index;not null"`
	Degree      string  `gorm:"not null"`
	CGPA        float64 `gorm:"column:cgpa;not null"`
	Duration    string  `gorm:"not null"`
	Location    string  `gorm:"not null"`
}

func (EducationModel) TableName() string { return "education" }
