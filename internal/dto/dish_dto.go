package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DishFlavorDTO struct {
	ID     int64  `json:"id,omitempty"`
	DishID int64  `json:"dishId,omitempty"`
	Name   string `json:"name"  validate:"required,max=32"`
	Value  string `json:"value" validate:"max=255"`
}

// DishRequest is the body of both create and update; ID is only read on update.
// A missing status means enabled on create and unchanged on update.
type DishRequest struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"        validate:"required,min=1,max=32"`
	CategoryID  int64           `json:"categoryId"  validate:"required,gt=0"`
	Price       decimal.Decimal `json:"price"       validate:"required,gt=0"`
	Image       string          `json:"image"       validate:"max=255"`
	Description string          `json:"description" validate:"max=255"`
	Status      *int            `json:"status"      validate:"omitempty,oneof=0 1"`
	Flavors     []DishFlavorDTO `json:"flavors"     validate:"dive"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type DishPageQuery struct {
	PageQuery
	Name       string `form:"name"`
	CategoryID *int64 `form:"categoryId"`
	Status     *int   `form:"status"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DishVO struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image"`
	Description  string          `json:"description"`
	Status       int             `json:"status"`
	UpdateTime   time.Time       `json:"updateTime"`
	Flavors      []DishFlavorDTO `json:"flavors,omitempty"`
}
