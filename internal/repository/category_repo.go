package repository

import (
	"context"

	"menuadmin/internal/model"

	"gorm.io/gorm"
)

// CategoryRepository reads the category table.
type CategoryRepository interface {
	// List returns categories ordered by sort, then id. A nil typ lists every type.
	List(ctx context.Context, typ *int) ([]model.Category, error)
}

type categoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context, typ *int) ([]model.Category, error) {
	var list []model.Category
	q := r.db.WithContext(ctx)
	if typ != nil {
		q = q.Where("type = ?", *typ)
	}
	err := q.Order("sort ASC, id ASC").Find(&list).Error
	return list, err
}
