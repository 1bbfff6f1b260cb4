package models

// ProfileModel is the portfolio owner's contact card. At most one row exists.
type ProfileModel struct {
	Base
	Singleton
	Name         string  `gorm:"index;not null"`
	Phone        string  `gorm:"not null"`
	Email        string  `gorm:"uniqueIndex;not null"`
	LinkedinURL  string  `gorm:"column:linkedin_url;not null"`
	GithubURL    string  `gorm:"column:github_url;not null"`
	PortfolioURL *string `gorm:"column:portfolio_url"`
}

func (ProfileModel) TableName() string { return "profile" }
