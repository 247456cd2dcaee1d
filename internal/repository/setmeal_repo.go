package repository

import (
	"context"
	"time"

	"menuadmin/internal/dto"
	"menuadmin/internal/model"

	"gorm.io/gorm"
)

// SetmealRow is a set meal joined with the name of its category.
type SetmealRow struct {
	model.Setmeal
	CategoryName string
}

// SetmealRepository defines the data access contract for set meals.
type SetmealRepository interface {
	Create(ctx context.Context, tx *gorm.DB, s *model.Setmeal) error
	FindByID(ctx context.Context, tx *gorm.DB, id int64) (*model.Setmeal, error)
	// Update rewrites every scalar column except status.
	Update(ctx context.Context, tx *gorm.DB, s *model.Setmeal) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, id int64, status int, updateUser int64) error
	Delete(ctx context.Context, tx *gorm.DB, id int64) error
	List(ctx context.Context, q dto.SetmealPageQuery) ([]SetmealRow, int64, error)

	DB() *gorm.DB
}

type setmealRepo struct{ db *gorm.DB }

func NewSetmealRepository(db *gorm.DB) SetmealRepository { return &setmealRepo{db: db} }

func (r *setmealRepo) DB() *gorm.DB { return r.db }

func (r *setmealRepo) Create(ctx context.Context, tx *gorm.DB, s *model.Setmeal) error {
	return conn(ctx, r.db, tx).Create(s).Error
}

func (r *setmealRepo) FindByID(ctx context.Context, tx *gorm.DB, id int64) (*model.Setmeal, error) {
	var s model.Setmeal
	if err := conn(ctx, r.db, tx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *setmealRepo) Update(ctx context.Context, tx *gorm.DB, s *model.Setmeal) error {
	return updateSetmeal(conn(ctx, r.db, tx), s.ID, map[string]interface{}{
		"name":        s.Name,
		"category_id": s.CategoryID,
		"price":       s.Price,
		"image":       s.Image,
		"description": s.Description,
		"update_time": time.Now(),
		"update_user": s.UpdateUser,
	})
}

func (r *setmealRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id int64, status int, updateUser int64) error {
	return updateSetmeal(conn(ctx, r.db, tx), id, map[string]interface{}{
		"status":      status,
		"update_time": time.Now(),
		"update_user": updateUser,
	})
}

func updateSetmeal(db *gorm.DB, id int64, cols map[string]interface{}) error {
	res := db.Model(&model.Setmeal{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *setmealRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	return conn(ctx, r.db, tx).Delete(&model.Setmeal{}, "id = ?", id).Error
}

func (r *setmealRepo) List(ctx context.Context, q dto.SetmealPageQuery) ([]SetmealRow, int64, error) {
	var rows []SetmealRow
	var total int64

	db := r.db.WithContext(ctx).
		Table("setmeal AS s").
		Joins("LEFT JOIN category AS c ON s.category_id = c.id")

	if q.Name != "" {
		db = db.Where("s.name LIKE ?", "%"+q.Name+"%")
	}
	if q.CategoryID != nil {
		db = db.Where("s.category_id = ?", *q.CategoryID)
	}
	if q.Status != nil {
		db = db.Where("s.status = ?", *q.Status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Select("s.*, c.name AS category_name").
		Order("s.create_time DESC, s.id DESC").
		Limit(q.Limit()).Offset(q.Offset()).
		Scan(&rows).Error
	return rows, total, err
}
