package handler

import (
	"net/http"
	"strconv"

	"menuadmin/internal/result"
	"menuadmin/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriesHandler struct{ svc service.CategoryService }

func NewCategoriesHandler(svc service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// List godoc
// @Summary Categories, optionally of one type
// @Tags category
// @Security BearerAuth
// @Produce json
// @Param type query int false "1 dish, 2 set meal"
// @Success 200 {object} result.Result
// @Router /admin/category/list [get]
func (h *CategoriesHandler) List(c *gin.Context) {
	var typ *int
	if raw := c.Query("type"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, result.Failure("invalid type"))
			return
		}
		typ = &v
	}
	list, err := h.svc.List(c.Request.Context(), typ)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, list)
}
