package handler

import (
	"net/http"
	"strconv"

	"menuadmin/internal/dto"
	"menuadmin/internal/result"
	"menuadmin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SetmealsHandler struct{ svc service.SetmealService }

func NewSetmealsHandler(svc service.SetmealService) *SetmealsHandler {
	return &SetmealsHandler{svc: svc}
}

// Save godoc
// @Summary Create a set meal with its dishes
// @Tags setmeal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.SetmealRequest true "Set meal"
// @Success 200 {object} result.Result
// @Failure 400 {object} result.Result
// @Router /admin/setmeal [post]
func (h *SetmealsHandler) Save(c *gin.Context) {
	var req dto.SetmealRequest
	if !bindAndValidate(c, &req) {
		return
	}
	log.Info().Str("name", req.Name).Int64("category_id", req.CategoryID).Int("dishes", len(req.SetmealDishes)).Msg("create set meal")

	id, err := h.svc.SaveWithDish(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, id)
}

// Page godoc
// @Summary Paginated set meal query
// @Tags setmeal
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param name query string false "Name substring"
// @Param categoryId query int false "Category id"
// @Param status query int false "Sale status"
// @Success 200 {object} result.Result
// @Router /admin/setmeal/page [get]
func (h *SetmealsHandler) Page(c *gin.Context) {
	var q dto.SetmealPageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, result.Failure(err.Error()))
		return
	}
	blankAsNil(c, "categoryId", &q.CategoryID)
	blankAsNil(c, "status", &q.Status)
	page, err := h.svc.PageQuery(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, page)
}

// Delete godoc
// @Summary Delete set meals in batch; fails if any of them is on sale
// @Tags setmeal
// @Security BearerAuth
// @Produce json
// @Param ids query string true "Comma separated ids"
// @Success 200 {object} result.Result
// @Failure 409 {object} result.Result
// @Router /admin/setmeal [delete]
func (h *SetmealsHandler) Delete(c *gin.Context) {
	ids, valid := queryIDs(c)
	if !valid {
		return
	}
	log.Info().Ints64("ids", ids).Msg("delete set meals")

	if err := h.svc.DeleteBatch(c.Request.Context(), ids); err != nil {
		respondError(c, err)
		return
	}
	ok(c, nil)
}

// GetByID godoc
// @Summary Set meal with its dishes
// @Tags setmeal
// @Security BearerAuth
// @Produce json
// @Param id path int true "Set meal id"
// @Success 200 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /admin/setmeal/{id} [get]
func (h *SetmealsHandler) GetByID(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	vo, err := h.svc.GetByIDWithDish(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, vo)
}

// Update godoc
// @Summary Update a set meal and replace its dishes
// @Tags setmeal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.SetmealRequest true "Set meal, id required"
// @Success 200 {object} result.Result
// @Router /admin/setmeal [put]
func (h *SetmealsHandler) Update(c *gin.Context) {
	var req dto.SetmealRequest
	if !bindAndValidate(c, &req) {
		return
	}
	log.Info().Int64("id", req.ID).Str("name", req.Name).Int("dishes", len(req.SetmealDishes)).Msg("update set meal")

	if err := h.svc.Update(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	ok(c, nil)
}

// StartOrStop godoc
// @Summary Put a set meal on or off sale
// @Tags setmeal
// @Security BearerAuth
// @Produce json
// @Param status path int true "1 enable, 0 disable"
// @Param id query int true "Set meal id"
// @Success 200 {object} result.Result
// @Router /admin/setmeal/status/{status} [post]
func (h *SetmealsHandler) StartOrStop(c *gin.Context) {
	status, err := strconv.Atoi(c.Param("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Failure("invalid status"))
		return
	}
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, result.Failure("id is required"))
		return
	}
	log.Info().Int64("id", id).Int("status", status).Msg("set meal status change")

	if err := h.svc.StartOrStop(c.Request.Context(), status, id); err != nil {
		respondError(c, err)
		return
	}
	ok(c, nil)
}
