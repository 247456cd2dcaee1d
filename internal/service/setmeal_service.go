package service

import (
	"context"
	"fmt"

	"menuadmin/internal/apierror"
	"menuadmin/internal/authctx"
	"menuadmin/internal/dto"
	"menuadmin/internal/model"
	"menuadmin/internal/repository"
	"menuadmin/internal/result"

	"gorm.io/gorm"
)

// MsgSetmealOnSale is the message of the BusinessRule error raised when a
// delete batch contains an enabled set meal.
const MsgSetmealOnSale = "set meal is on sale and cannot be deleted"

type SetmealService interface {
	SaveWithDish(ctx context.Context, req dto.SetmealRequest) (int64, error)
	PageQuery(ctx context.Context, q dto.SetmealPageQuery) (result.PageResult[dto.SetmealVO], error)
	DeleteBatch(ctx context.Context, ids []int64) error
	GetByIDWithDish(ctx context.Context, id int64) (*dto.SetmealVO, error)
	Update(ctx context.Context, req dto.SetmealRequest) error
	StartOrStop(ctx context.Context, status int, id int64) error
}

type setmealService struct {
	repo   repository.SetmealRepository
	dishes repository.SetmealDishRepository
}

func NewSetmealService(repo repository.SetmealRepository, dishes repository.SetmealDishRepository) SetmealService {
	return &setmealService{repo: repo, dishes: dishes}
}

// ── SaveWithDish ──────────────────────────────────────────────────────────────
// The set meal row and its associations commit together or not at all.

func (s *setmealService) SaveWithDish(ctx context.Context, req dto.SetmealRequest) (int64, error) {
	if !model.ValidStatus(req.Status) {
		return 0, apierror.Validation(fmt.Sprintf("invalid status %d", req.Status))
	}
	setmeal := setmealFromRequest(req)
	setmeal.ID = 0
	setmeal.CreateUser = authctx.EmployeeID(ctx)
	setmeal.UpdateUser = setmeal.CreateUser

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &setmeal); err != nil {
			return err
		}
		return s.dishes.CreateBatch(ctx, tx, setmealDishesFromRequest(setmeal.ID, req.SetmealDishes))
	})
	if err != nil {
		return 0, storeErr(err, "set meal not found")
	}
	return setmeal.ID, nil
}

// ── PageQuery ─────────────────────────────────────────────────────────────────

func (s *setmealService) PageQuery(ctx context.Context, q dto.SetmealPageQuery) (result.PageResult[dto.SetmealVO], error) {
	q.PageQuery = q.Normalized()
	rows, total, err := s.repo.List(ctx, q)
	if err != nil {
		return result.PageResult[dto.SetmealVO]{}, storeErr(err, "")
	}
	records := make([]dto.SetmealVO, 0, len(rows))
	for _, r := range rows {
		records = append(records, setmealRowToVO(r))
	}
	return result.PageResult[dto.SetmealVO]{Total: total, Records: records}, nil
}

// ── DeleteBatch ───────────────────────────────────────────────────────────────
// Two passes in one transaction:
//   1. every id must exist and be disabled; one enabled row rejects the batch
//   2. delete each set meal row and its associations

func (s *setmealService) DeleteBatch(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return apierror.Validation("ids must not be empty")
	}
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, id := range ids {
			sm, err := s.repo.FindByID(ctx, tx, id)
			if err != nil {
				return storeErr(err, fmt.Sprintf("set meal %d not found", id))
			}
			if sm.Status == model.StatusEnable {
				return apierror.BusinessRule(MsgSetmealOnSale)
			}
		}

		for _, id := range ids {
			if err := s.repo.Delete(ctx, tx, id); err != nil {
				return err
			}
			if err := s.dishes.DeleteBySetmealID(ctx, tx, id); err != nil {
				return err
			}
		}
		return nil
	})
	return storeErr(err, "set meal not found")
}

// ── GetByIDWithDish ───────────────────────────────────────────────────────────

func (s *setmealService) GetByIDWithDish(ctx context.Context, id int64) (*dto.SetmealVO, error) {
	sm, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("set meal %d not found", id))
	}
	items, err := s.dishes.FindBySetmealID(ctx, nil, id)
	if err != nil {
		return nil, storeErr(err, "")
	}
	vo := setmealToVO(*sm)
	vo.SetmealDishes = setmealDishesToDTO(items)
	return &vo, nil
}

// ── Update ────────────────────────────────────────────────────────────────────
// Scalar columns are rewritten except status; the association set is replaced
// wholesale (delete then reinsert).

func (s *setmealService) Update(ctx context.Context, req dto.SetmealRequest) error {
	if req.ID <= 0 {
		return apierror.Validation("id is required")
	}
	setmeal := setmealFromRequest(req)
	setmeal.UpdateUser = authctx.EmployeeID(ctx)

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, &setmeal); err != nil {
			return err
		}
		if err := s.dishes.DeleteBySetmealID(ctx, tx, setmeal.ID); err != nil {
			return err
		}
		return s.dishes.CreateBatch(ctx, tx, setmealDishesFromRequest(setmeal.ID, req.SetmealDishes))
	})
	return storeErr(err, fmt.Sprintf("set meal %d not found", req.ID))
}

// ── StartOrStop ───────────────────────────────────────────────────────────────

func (s *setmealService) StartOrStop(ctx context.Context, status int, id int64) error {
	if !model.ValidStatus(status) {
		return apierror.Validation(fmt.Sprintf("invalid status %d", status))
	}
	err := s.repo.UpdateStatus(ctx, nil, id, status, authctx.EmployeeID(ctx))
	return storeErr(err, fmt.Sprintf("set meal %d not found", id))
}
