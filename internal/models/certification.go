package models

type CertificationModel struct {
	Base
	Issuer string `gorm:"not null"`
	Title  string `gorm:"not null"`
}

func (CertificationModel) TableName() string { return "certifications" }
