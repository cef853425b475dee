package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/utils"
)

func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, errorResponse(err))
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, errorResponse(err))
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, errorResponse(err))
	case errors.Is(err, models.UnprocessableEntityError),
		errors.Is(err, models.ErrNoCalculationSchema):
		c.JSON(http.StatusUnprocessableEntity, errorResponse(err))
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
	return true
}

func errorResponse(err error) gin.H {
	response := gin.H{"message": err.Error()}
	if details := errors.GetAllDetails(err); len(details) > 0 {
		response["details"] = details
	}
	return response
}
