package model

import "github.com/shopspring/decimal"

// Setmeal is a bundled combo of dishes. An enabled (on sale) set meal cannot
// be deleted; it must be switched to StatusDisable first.
type Setmeal struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(32);uniqueIndex;not null"`
	CategoryID  int64           `gorm:"index;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Image       string          `gorm:"type:varchar(255)"`
	Description string          `gorm:"type:varchar(255)"`
	Status      int             `gorm:"not null;default:0"`
	Audit       `gorm:"embedded"`
}

func (Setmeal) TableName() string { return "setmeal" }

// SetmealDish links a set meal to one of its dishes. Name and Price are a
// snapshot of the dish at the time the association was written.
type SetmealDish struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	SetmealID int64           `gorm:"index;not null"`
	DishID    int64           `gorm:"index;not null"`
	Name      string          `gorm:"type:varchar(32)"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)"`
	Copies    int             `gorm:"not null;default:1"`
}

func (SetmealDish) TableName() string { return "setmeal_dish" }
