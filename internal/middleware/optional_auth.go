package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/Varun532-pixel/naukri-clone/internal/auth"
	"github.com/Varun532-pixel/naukri-clone/internal/database"
	"github.com/Varun532-pixel/naukri-clone/internal/model"
	"github.com/Varun532-pixel/naukri-clone/internal/utilities"
)

// OptionalAuth resolves the acting account when a valid Bearer token is
// attached but never rejects the request. Public endpoints use it to
// personalize responses for logged-in callers.
func OptionalAuth(db *database.DBinstanceStruct) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractBearerToken(ctx)
		if err != nil {
			ctx.Next()
			return
		}

		token, err := auth.ValidatedToken(tokenString)
		if err != nil || !token.Valid {
			ctx.Next()
			return
		}

		claims := token.Claims.(*jwt.RegisteredClaims)
		if claims.Issuer != auth.JwtIssuer {
			ctx.Next()
			return
		}

		var foundUser model.User
		if err := db.Where("id = ?", claims.Subject).First(&foundUser).Error; err != nil {
			ctx.Next()
			return
		}

		ctx.Set("user", foundUser)
		ctx.Next()
	}
}
