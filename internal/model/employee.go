package model

import "time"

// Employee is a back-office account allowed to use the admin API.
type Employee struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:varchar(32);not null"`
	Username   string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Password   string    `gorm:"type:varchar(64);not null"` // bcrypt hash
	Status     int       `gorm:"not null"`
	CreateTime time.Time `gorm:"autoCreateTime"`
	UpdateTime time.Time `gorm:"autoUpdateTime"`
}

func (Employee) TableName() string { return "employee" }
