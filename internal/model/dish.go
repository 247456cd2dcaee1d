package model

import "github.com/shopspring/decimal"

// Dish is a single menu item. Its flavors live in dish_flavor and are
// rewritten wholesale whenever the dish is updated.
type Dish struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(32);uniqueIndex;not null"`
	CategoryID  int64           `gorm:"index;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Image       string          `gorm:"type:varchar(255)"`
	Description string          `gorm:"type:varchar(255)"`
	Status      int             `gorm:"not null"`
	Audit       `gorm:"embedded"`
}

func (Dish) TableName() string { return "dish" }

// DishFlavor is a name/value option of a dish, e.g. "spiciness" → ["mild","hot"].
type DishFlavor struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	DishID int64  `gorm:"index;not null"`
	Name   string `gorm:"type:varchar(32)"`
	Value  string `gorm:"type:varchar(255)"`
}

func (DishFlavor) TableName() string { return "dish_flavor" }
