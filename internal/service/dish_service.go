package service

import (
	"context"
	"errors"
	"fmt"

	"menuadmin/internal/apierror"
	"menuadmin/internal/authctx"
	"menuadmin/internal/cache"
	"menuadmin/internal/dto"
	"menuadmin/internal/repository"
	"menuadmin/internal/result"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type DishService interface {
	SaveWithFlavor(ctx context.Context, req dto.DishRequest) (int64, error)
	PageQuery(ctx context.Context, q dto.DishPageQuery) (result.PageResult[dto.DishVO], error)
	DeleteBatch(ctx context.Context, ids []int64) error
	GetByIDWithFlavor(ctx context.Context, id int64) (*dto.DishVO, error)
	UpdateWithFlavor(ctx context.Context, req dto.DishRequest) error
	List(ctx context.Context, categoryID int64) ([]dto.DishVO, error)
}

type dishService struct {
	repo    repository.DishRepository
	flavors repository.DishFlavorRepository
	cache   cache.DishCache
}

// NewDishService wires the dish service. A nil dishCache disables caching.
func NewDishService(repo repository.DishRepository, flavors repository.DishFlavorRepository, dishCache cache.DishCache) DishService {
	if dishCache == nil {
		dishCache = cache.Noop{}
	}
	return &dishService{repo: repo, flavors: flavors, cache: dishCache}
}

// ── SaveWithFlavor ────────────────────────────────────────────────────────────

func (s *dishService) SaveWithFlavor(ctx context.Context, req dto.DishRequest) (int64, error) {
	dish := dishFromRequest(req)
	dish.ID = 0
	dish.CreateUser = authctx.EmployeeID(ctx)
	dish.UpdateUser = dish.CreateUser

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &dish); err != nil {
			return err
		}
		return s.flavors.CreateBatch(ctx, tx, flavorsFromRequest(dish.ID, req.Flavors))
	})
	if err != nil {
		return 0, storeErr(err, "dish not found")
	}

	s.evict(ctx, dish.CategoryID)
	return dish.ID, nil
}

// ── PageQuery ─────────────────────────────────────────────────────────────────

func (s *dishService) PageQuery(ctx context.Context, q dto.DishPageQuery) (result.PageResult[dto.DishVO], error) {
	q.PageQuery = q.Normalized()
	rows, total, err := s.repo.List(ctx, q)
	if err != nil {
		return result.PageResult[dto.DishVO]{}, storeErr(err, "")
	}
	records := make([]dto.DishVO, 0, len(rows))
	for _, r := range rows {
		records = append(records, dishRowToVO(r))
	}
	return result.PageResult[dto.DishVO]{Total: total, Records: records}, nil
}

// ── DeleteBatch ───────────────────────────────────────────────────────────────
// Dishes carry no sale-status gate: an enabled dish is deleted like any other.
// Ids with no row are skipped.

func (s *dishService) DeleteBatch(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return apierror.Validation("ids must not be empty")
	}
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, id := range ids {
			if err := s.repo.Delete(ctx, tx, id); err != nil {
				return err
			}
			if err := s.flavors.DeleteByDishID(ctx, tx, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return storeErr(err, "dish not found")
	}
	s.evictAll(ctx)
	return nil
}

// ── GetByIDWithFlavor ─────────────────────────────────────────────────────────

func (s *dishService) GetByIDWithFlavor(ctx context.Context, id int64) (*dto.DishVO, error) {
	dish, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("dish %d not found", id))
	}
	flavors, err := s.flavors.FindByDishID(ctx, nil, id)
	if err != nil {
		return nil, storeErr(err, "")
	}
	vo := dishToVO(*dish)
	vo.Flavors = flavorsToDTO(flavors)
	return &vo, nil
}

// ── UpdateWithFlavor ──────────────────────────────────────────────────────────

func (s *dishService) UpdateWithFlavor(ctx context.Context, req dto.DishRequest) error {
	if req.ID <= 0 {
		return apierror.Validation("id is required")
	}
	dish := dishFromRequest(req)
	dish.UpdateUser = authctx.EmployeeID(ctx)

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if req.Status == nil {
			existing, err := s.repo.FindByID(ctx, tx, dish.ID)
			if err != nil {
				return err
			}
			dish.Status = existing.Status
		}
		if err := s.repo.Update(ctx, tx, &dish); err != nil {
			return err
		}
		if err := s.flavors.DeleteByDishID(ctx, tx, dish.ID); err != nil {
			return err
		}
		return s.flavors.CreateBatch(ctx, tx, flavorsFromRequest(dish.ID, req.Flavors))
	})
	if err != nil {
		return storeErr(err, fmt.Sprintf("dish %d not found", req.ID))
	}
	s.evictAll(ctx)
	return nil
}

// ── List ──────────────────────────────────────────────────────────────────────
// Read-through: a cache failure is logged and the database answers instead.

func (s *dishService) List(ctx context.Context, categoryID int64) ([]dto.DishVO, error) {
	cached, ok, err := s.cache.GetByCategory(ctx, categoryID)
	if err != nil {
		log.Warn().Err(err).Int64("category_id", categoryID).Msg("dish cache read failed")
	} else if ok {
		return cached, nil
	}

	// taken before the database read; a write that commits in between
	// bumps it and the refill below is dropped
	gen, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		log.Warn().Err(genErr).Int64("category_id", categoryID).Msg("dish cache generation read failed")
	}

	dishes, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, storeErr(err, "")
	}
	out := make([]dto.DishVO, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, dishToVO(d))
	}

	if genErr != nil {
		return out, nil
	}
	err = s.cache.SetByCategory(ctx, categoryID, gen, out)
	switch {
	case errors.Is(err, cache.ErrStale):
		log.Debug().Int64("category_id", categoryID).Msg("dish cache refill skipped, list changed during read")
	case err != nil:
		log.Warn().Err(err).Int64("category_id", categoryID).Msg("dish cache write failed")
	}
	return out, nil
}

func (s *dishService) evict(ctx context.Context, categoryID int64) {
	if err := s.cache.Evict(ctx, categoryID); err != nil {
		log.Warn().Err(err).Int64("category_id", categoryID).Msg("dish cache evict failed")
	}
}

func (s *dishService) evictAll(ctx context.Context) {
	if err := s.cache.EvictAll(ctx); err != nil {
		log.Warn().Err(err).Msg("dish cache flush failed")
	}
}
