package repository

import (
	"context"
	"time"

	"menuadmin/internal/dto"
	"menuadmin/internal/model"

	"gorm.io/gorm"
)

// DishRow is a dish joined with the name of its category.
type DishRow struct {
	model.Dish
	CategoryName string
}

// DishRepository defines the data access contract for dishes.
// Services depend on this interface, not on the concrete GORM implementation.
type DishRepository interface {
	Create(ctx context.Context, tx *gorm.DB, d *model.Dish) error
	FindByID(ctx context.Context, tx *gorm.DB, id int64) (*model.Dish, error)
	// Update rewrites the scalar columns; gorm.ErrRecordNotFound when no row matched.
	Update(ctx context.Context, tx *gorm.DB, d *model.Dish) error
	Delete(ctx context.Context, tx *gorm.DB, id int64) error
	List(ctx context.Context, q dto.DishPageQuery) ([]DishRow, int64, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Dish, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type dishRepo struct{ db *gorm.DB }

func NewDishRepository(db *gorm.DB) DishRepository { return &dishRepo{db: db} }

func (r *dishRepo) DB() *gorm.DB { return r.db }

func (r *dishRepo) Create(ctx context.Context, tx *gorm.DB, d *model.Dish) error {
	return conn(ctx, r.db, tx).Create(d).Error
}

func (r *dishRepo) FindByID(ctx context.Context, tx *gorm.DB, id int64) (*model.Dish, error) {
	var d model.Dish
	if err := conn(ctx, r.db, tx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *dishRepo) Update(ctx context.Context, tx *gorm.DB, d *model.Dish) error {
	res := conn(ctx, r.db, tx).Model(&model.Dish{}).Where("id = ?", d.ID).Updates(map[string]interface{}{
		"name":        d.Name,
		"category_id": d.CategoryID,
		"price":       d.Price,
		"image":       d.Image,
		"description": d.Description,
		"status":      d.Status,
		"update_time": time.Now(),
		"update_user": d.UpdateUser,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *dishRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	return conn(ctx, r.db, tx).Delete(&model.Dish{}, "id = ?", id).Error
}

func (r *dishRepo) List(ctx context.Context, q dto.DishPageQuery) ([]DishRow, int64, error) {
	var rows []DishRow
	var total int64

	db := r.db.WithContext(ctx).
		Table("dish AS d").
		Joins("LEFT JOIN category AS c ON d.category_id = c.id")

	if q.Name != "" {
		db = db.Where("d.name LIKE ?", "%"+q.Name+"%")
	}
	if q.CategoryID != nil {
		db = db.Where("d.category_id = ?", *q.CategoryID)
	}
	if q.Status != nil {
		db = db.Where("d.status = ?", *q.Status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Select("d.*, c.name AS category_name").
		Order("d.create_time DESC, d.id DESC").
		Limit(q.Limit()).Offset(q.Offset()).
		Scan(&rows).Error
	return rows, total, err
}

func (r *dishRepo) ListByCategory(ctx context.Context, categoryID int64) ([]model.Dish, error) {
	var list []model.Dish
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("create_time DESC, id DESC").
		Find(&list).Error
	return list, err
}
