package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/database"
	"lendsqr.dev/admin-api-gateway/app/infrastructure/database/repository/transaction"
	"lendsqr.dev/admin-api-gateway/app/interfaces/http/responses"
)

func TransactionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tx := database.DB.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()
		ctxWithTx := transaction.WithTx(c.Request.Context(), tx)
		c.Request = c.Request.WithContext(ctxWithTx)
		c.Next()

		if c.IsAborted() {
			tx.Rollback()
			return
		}

		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
				Code: "b7e3d1a9-4c28-4f6b-8d05-9a1e2c7f3b68",
			})
			return
		}
	}
}
