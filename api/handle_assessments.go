package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lgu-seal/sglgb-backend/dto"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
	"github.com/lgu-seal/sglgb-backend/usecases"
)

type assessmentIdUriInput struct {
	AssessmentId string `uri:"assessment_id" binding:"required,uuid"`
}

func handleEvaluateIndicator(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var uri struct {
			AssessmentId string `uri:"assessment_id" binding:"required,uuid"`
			IndicatorId  string `uri:"indicator_id" binding:"required,uuid"`
		}
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		result, err := uc.NewAssessmentUsecase().EvaluateIndicator(ctx, uri.AssessmentId, uri.IndicatorId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptEvaluationResultDto(result.Verdict, result.Variables))
	}
}

func handleCalculateAssessment(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var uri assessmentIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		report, err := uc.NewAssessmentUsecase().CalculateAssessment(ctx, uri.AssessmentId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptComplianceReportDto(report))
	}
}

func handleListBbiResults(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var uri assessmentIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		results, err := uc.NewAssessmentUsecase().GetBbiResults(ctx, uri.AssessmentId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"bbi_results": pure_utils.Map(results, dto.AdaptBbiComplianceResultDto)})
	}
}
