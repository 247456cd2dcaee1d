package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SetmealDishDTO struct {
	ID        int64           `json:"id,omitempty"`
	SetmealID int64           `json:"setmealId"`
	DishID    int64           `json:"dishId" validate:"required,gt=0"`
	Name      string          `json:"name"   validate:"max=32"`
	Price     decimal.Decimal `json:"price"`
	Copies    int             `json:"copies" validate:"min=1"`
}

// SetmealRequest is the body of both create and update. Status is honoured on
// create only; afterwards it changes exclusively through the status endpoint.
type SetmealRequest struct {
	ID            int64            `json:"id"`
	CategoryID    int64            `json:"categoryId"    validate:"required,gt=0"`
	Name          string           `json:"name"          validate:"required,min=1,max=32"`
	Price         decimal.Decimal  `json:"price"         validate:"required,gt=0"`
	Status        int              `json:"status"        validate:"oneof=0 1"`
	Image         string           `json:"image"         validate:"max=255"`
	Description   string           `json:"description"   validate:"max=255"`
	SetmealDishes []SetmealDishDTO `json:"setmealDishes" validate:"required,min=1,dive"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type SetmealPageQuery struct {
	PageQuery
	Name       string `form:"name"`
	CategoryID *int64 `form:"categoryId"`
	Status     *int   `form:"status"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SetmealVO struct {
	ID            int64            `json:"id"`
	CategoryID    int64            `json:"categoryId"`
	CategoryName  string           `json:"categoryName,omitempty"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	Status        int              `json:"status"`
	Image         string           `json:"image"`
	Description   string           `json:"description"`
	UpdateTime    time.Time        `json:"updateTime"`
	SetmealDishes []SetmealDishDTO `json:"setmealDishes,omitempty"`
}
