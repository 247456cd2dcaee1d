package repository

import (
	"context"

	"menuadmin/internal/model"

	"gorm.io/gorm"
)

type DishFlavorRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, flavors []model.DishFlavor) error
	DeleteByDishID(ctx context.Context, tx *gorm.DB, dishID int64) error
	FindByDishID(ctx context.Context, tx *gorm.DB, dishID int64) ([]model.DishFlavor, error)
}

type dishFlavorRepo struct{ db *gorm.DB }

func NewDishFlavorRepository(db *gorm.DB) DishFlavorRepository { return &dishFlavorRepo{db: db} }

// CreateBatch is a no-op for an empty slice; gorm rejects empty batch inserts.
func (r *dishFlavorRepo) CreateBatch(ctx context.Context, tx *gorm.DB, flavors []model.DishFlavor) error {
	if len(flavors) == 0 {
		return nil
	}
	return conn(ctx, r.db, tx).Create(&flavors).Error
}

func (r *dishFlavorRepo) DeleteByDishID(ctx context.Context, tx *gorm.DB, dishID int64) error {
	return conn(ctx, r.db, tx).Where("dish_id = ?", dishID).Delete(&model.DishFlavor{}).Error
}

func (r *dishFlavorRepo) FindByDishID(ctx context.Context, tx *gorm.DB, dishID int64) ([]model.DishFlavor, error) {
	var list []model.DishFlavor
	err := conn(ctx, r.db, tx).Where("dish_id = ?", dishID).Order("id ASC").Find(&list).Error
	return list, err
}
