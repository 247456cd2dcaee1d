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

type DishesHandler struct{ svc service.DishService }

func NewDishesHandler(svc service.DishService) *DishesHandler { return &DishesHandler{svc: svc} }

// Save godoc
// @Summary Create a dish with its flavors
// @Tags dish
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.DishRequest true "Dish"
// @Success 200 {object} result.Result
// @Failure 400 {object} result.Result
// @Router /admin/dish [post]
func (h *DishesHandler) Save(c *gin.Context) {
	var req dto.DishRequest
	if !bindAndValidate(c, &req) {
		return
	}
	log.Info().Str("name", req.Name).Int64("category_id", req.CategoryID).Int("flavors", len(req.Flavors)).Msg("create dish")

	id, err := h.svc.SaveWithFlavor(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, id)
}

// Page godoc
// @Summary Paginated dish query
// @Tags dish
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param name query string false "Name substring"
// @Param categoryId query int false "Category id"
// @Param status query int false "Sale status"
// @Success 200 {object} result.Result
// @Router /admin/dish/page [get]
func (h *DishesHandler) Page(c *gin.Context) {
	var q dto.DishPageQuery
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
// @Summary Delete dishes in batch
// @Tags dish
// @Security BearerAuth
// @Produce json
// @Param ids query string true "Comma separated ids"
// @Success 200 {object} result.Result
// @Router /admin/dish [delete]
func (h *DishesHandler) Delete(c *gin.Context) {
	ids, valid := queryIDs(c)
	if !valid {
		return
	}
	log.Info().Ints64("ids", ids).Msg("delete dishes")

	if err := h.svc.DeleteBatch(c.Request.Context(), ids); err != nil {
		respondError(c, err)
		return
	}
	ok(c, nil)
}

// GetByID godoc
// @Summary Dish with its flavors
// @Tags dish
// @Security BearerAuth
// @Produce json
// @Param id path int true "Dish id"
// @Success 200 {object} result.Result
// @Failure 404 {object} result.Result
// @Router /admin/dish/{id} [get]
func (h *DishesHandler) GetByID(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	vo, err := h.svc.GetByIDWithFlavor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, vo)
}

// Update godoc
// @Summary Update a dish and replace its flavors
// @Tags dish
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.DishRequest true "Dish, id required"
// @Success 200 {object} result.Result
// @Router /admin/dish [put]
func (h *DishesHandler) Update(c *gin.Context) {
	var req dto.DishRequest
	if !bindAndValidate(c, &req) {
		return
	}
	log.Info().Int64("id", req.ID).Str("name", req.Name).Int("flavors", len(req.Flavors)).Msg("update dish")

	if err := h.svc.UpdateWithFlavor(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	ok(c, nil)
}

// List godoc
// @Summary Dishes of a category
// @Tags dish
// @Security BearerAuth
// @Produce json
// @Param categoryId query int true "Category id"
// @Success 200 {object} result.Result
// @Router /admin/dish/list [get]
func (h *DishesHandler) List(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Query("categoryId"), 10, 64)
	if err != nil || categoryID <= 0 {
		c.JSON(http.StatusBadRequest, result.Failure("categoryId is required"))
		return
	}
	list, err := h.svc.List(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, list)
}
