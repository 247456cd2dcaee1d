package repository

import (
	"context"

	"menuadmin/internal/model"

	"gorm.io/gorm"
)

// SetmealDishRepository manages the set meal ↔ dish association rows.
type SetmealDishRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, items []model.SetmealDish) error
	DeleteBySetmealID(ctx context.Context, tx *gorm.DB, setmealID int64) error
	FindBySetmealID(ctx context.Context, tx *gorm.DB, setmealID int64) ([]model.SetmealDish, error)
}

type setmealDishRepo struct{ db *gorm.DB }

func NewSetmealDishRepository(db *gorm.DB) SetmealDishRepository { return &setmealDishRepo{db: db} }

func (r *setmealDishRepo) CreateBatch(ctx context.Context, tx *gorm.DB, items []model.SetmealDish) error {
	if len(items) == 0 {
		return nil
	}
	return conn(ctx, r.db, tx).Create(&items).Error
}

func (r *setmealDishRepo) DeleteBySetmealID(ctx context.Context, tx *gorm.DB, setmealID int64) error {
	return conn(ctx, r.db, tx).Where("setmeal_id = ?", setmealID).Delete(&model.SetmealDish{}).Error
}

func (r *setmealDishRepo) FindBySetmealID(ctx context.Context, tx *gorm.DB, setmealID int64) ([]model.SetmealDish, error) {
	var list []model.SetmealDish
	err := conn(ctx, r.db, tx).Where("setmeal_id = ?", setmealID).Order("id ASC").Find(&list).Error
	return list, err
}
