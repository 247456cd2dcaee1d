package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"menuadmin/internal/apierror"
	"menuadmin/internal/result"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// gt=0 and required work on prices.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, result.Failure("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, result.Failure(err.Error()))
			return false
		}
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
		}
		c.JSON(http.StatusBadRequest, result.Failure("validation failed: "+strings.Join(fields, ", ")))
		return false
	}
	return true
}

// respondError renders a service error. Persistence and unknown errors are
// pushed onto the context for middleware.ErrorHandler, which logs the cause
// and answers with a generic message.
func respondError(c *gin.Context, err error) {
	status := apierror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		return
	}
	c.JSON(status, result.Failure(apierror.PublicMessage(err)))
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, result.Success(data))
}

// blankAsNil clears an optional filter that was bound from an empty query
// parameter such as ?status=, so it means no filter instead of zero.
func blankAsNil[T any](c *gin.Context, key string, p **T) {
	if strings.TrimSpace(c.Query(key)) == "" {
		*p = nil
	}
}

// pathID parses a positive int64 path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, result.Failure("invalid "+name))
		return 0, false
	}
	return id, true
}

// queryIDs reads the ids query parameter, accepting both ?ids=1,2,3 and
// repeated ?ids=1&ids=2.
func queryIDs(c *gin.Context) ([]int64, bool) {
	var ids []int64
	for _, raw := range c.QueryArray("ids") {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil || id <= 0 {
				c.JSON(http.StatusBadRequest, result.Failure("invalid id "+strconv.Quote(part)))
				return nil, false
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, result.Failure("ids is required"))
		return nil, false
	}
	return ids, true
}
