package middleware

import (
	"net/http"
	"strings"

	"menuadmin/internal/authctx"
	"menuadmin/internal/result"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimsKey = "claims"

	// TokenHeader is the header the admin front-end sends the raw token in.
	TokenHeader = "token"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	EmpID    int64  `json:"emp_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTAuth validates the access token on every protected route. The token is
// read from "Authorization: Bearer ..." or, failing that, the token header.
// The employee id is bound to the request context for audit stamping.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, result.Failure("authentication required"))
			return
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid || claims.EmpID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, result.Failure("invalid or expired token"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Request = c.Request.WithContext(authctx.WithEmployeeID(c.Request.Context(), claims.EmpID))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.GetHeader(TokenHeader)
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}
