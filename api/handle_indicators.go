package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lgu-seal/sglgb-backend/dto"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
	"github.com/lgu-seal/sglgb-backend/usecases"
)

type indicatorIdUriInput struct {
	IndicatorId string `uri:"indicator_id" binding:"required,uuid"`
}

func handleListGovernanceAreas(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		areas, err := uc.NewIndicatorUsecase().ListGovernanceAreas(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"governance_areas": pure_utils.Map(areas, dto.AdaptGovernanceAreaDto)})
	}
}

func handleListIndicators(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var uri struct {
			GovernanceAreaId string `uri:"governance_area_id" binding:"required,uuid"`
		}
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		indicators, err := uc.NewIndicatorUsecase().ListIndicators(ctx, uri.GovernanceAreaId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"indicators": pure_utils.Map(indicators, dto.AdaptIndicatorDto)})
	}
}

func handleGetIndicator(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var uri indicatorIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		indicator, err := uc.NewIndicatorUsecase().GetIndicator(ctx, uri.IndicatorId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"indicator": dto.AdaptIndicatorDto(indicator)})
	}
}
