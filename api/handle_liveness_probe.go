package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lgu-seal/sglgb-backend/usecases"
)

func handleLivenessProbe(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if presentError(ctx, c, uc.NewLivenessUsecase().Liveness(ctx)) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
