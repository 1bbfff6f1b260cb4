package models

// SkillCategoryModel groups skills under a category name, which is unique.
type SkillCategoryModel struct {
	Base
	CategoryName string      `gorm:"column:category_name;uniqueIndex;not null"`
	Skills       StringArray `gorm:"not null"`
}

func (SkillCategoryModel) TableName() string { return "skill_categories" }
