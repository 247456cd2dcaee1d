package model

import "time"

// Category types.
const (
	CategoryTypeDish    = 1
	CategoryTypeSetmeal = 2
)

// Category groups dishes (type 1) or set meals (type 2) on the menu.
type Category struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Type       int       `gorm:"not null"`
	Name       string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Sort       int       `gorm:"not null;default:0"`
	Status     int       `gorm:"not null"`
	CreateTime time.Time `gorm:"autoCreateTime"`
	UpdateTime time.Time `gorm:"autoUpdateTime"`
}

func (Category) TableName() string { return "category" }
