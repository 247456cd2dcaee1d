package service

import (
	"menuadmin/internal/dto"
	"menuadmin/internal/model"
	"menuadmin/internal/repository"
)

// ── Dish ──────────────────────────────────────────────────────────────────────

func dishFromRequest(req dto.DishRequest) model.Dish {
	d := model.Dish{
		ID:          req.ID,
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Status:      model.StatusEnable,
	}
	if req.Status != nil {
		d.Status = *req.Status
	}
	return d
}

func flavorsFromRequest(dishID int64, in []dto.DishFlavorDTO) []model.DishFlavor {
	out := make([]model.DishFlavor, 0, len(in))
	for _, f := range in {
		out = append(out, model.DishFlavor{DishID: dishID, Name: f.Name, Value: f.Value})
	}
	return out
}

func dishToVO(d model.Dish) dto.DishVO {
	return dto.DishVO{
		ID:          d.ID,
		Name:        d.Name,
		CategoryID:  d.CategoryID,
		Price:       d.Price,
		Image:       d.Image,
		Description: d.Description,
		Status:      d.Status,
		UpdateTime:  d.UpdateTime,
	}
}

func dishRowToVO(r repository.DishRow) dto.DishVO {
	vo := dishToVO(r.Dish)
	vo.CategoryName = r.CategoryName
	return vo
}

func flavorsToDTO(in []model.DishFlavor) []dto.DishFlavorDTO {
	out := make([]dto.DishFlavorDTO, 0, len(in))
	for _, f := range in {
		out = append(out, dto.DishFlavorDTO{ID: f.ID, DishID: f.DishID, Name: f.Name, Value: f.Value})
	}
	return out
}

// ── Setmeal ───────────────────────────────────────────────────────────────────

func setmealFromRequest(req dto.SetmealRequest) model.Setmeal {
	return model.Setmeal{
		ID:          req.ID,
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Status:      req.Status,
	}
}

// setmealDishesFromRequest stamps every association with setmealID,
// whatever id the client sent.
func setmealDishesFromRequest(setmealID int64, in []dto.SetmealDishDTO) []model.SetmealDish {
	out := make([]model.SetmealDish, 0, len(in))
	for _, sd := range in {
		out = append(out, model.SetmealDish{
			SetmealID: setmealID,
			DishID:    sd.DishID,
			Name:      sd.Name,
			Price:     sd.Price,
			Copies:    sd.Copies,
		})
	}
	return out
}

func setmealToVO(s model.Setmeal) dto.SetmealVO {
	return dto.SetmealVO{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Price:       s.Price,
		Status:      s.Status,
		Image:       s.Image,
		Description: s.Description,
		UpdateTime:  s.UpdateTime,
	}
}

func setmealRowToVO(r repository.SetmealRow) dto.SetmealVO {
	vo := setmealToVO(r.Setmeal)
	vo.CategoryName = r.CategoryName
	return vo
}

func setmealDishesToDTO(in []model.SetmealDish) []dto.SetmealDishDTO {
	out := make([]dto.SetmealDishDTO, 0, len(in))
	for _, sd := range in {
		out = append(out, dto.SetmealDishDTO{
			ID:        sd.ID,
			SetmealID: sd.SetmealID,
			DishID:    sd.DishID,
			Name:      sd.Name,
			Price:     sd.Price,
			Copies:    sd.Copies,
		})
	}
	return out
}
