package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Varun532-pixel/naukri-clone/internal/utilities"
)

// CheckRole will protect endpoint from user that is not a specific roles.
// Role checks live here so handlers never branch on role strings themselves.
func CheckRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := utilities.ExtractUser(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		if !utilities.Contains(roles, user.Role) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, utilities.ErrorResponse{
				Error: "User doesn't have permission to access",
			})
		}
	}
}
