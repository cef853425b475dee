package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/lgu-seal/sglgb-backend/dto"
	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
	"github.com/lgu-seal/sglgb-backend/usecases"
)

type checklistIdUriInput struct {
	ChecklistId string `uri:"checklist_id" binding:"required,uuid"`
}

// handleValidateChecklistConfig runs validation on a configuration without
// storing anything, so the builder frontend can surface issues while editing.
func handleValidateChecklistConfig(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body dto.ChecklistConfigDto
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		config, err := dto.AdaptChecklistConfig(body)
		if presentError(c.Request.Context(), c, err) {
			return
		}

		report := uc.NewChecklistUsecase().ValidateChecklistConfig(config)
		c.JSON(http.StatusOK, dto.AdaptValidationReportDto(report))
	}
}

func handleCreateChecklist(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body struct {
			IndicatorId string                 `json:"indicator_id" binding:"required,uuid"`
			Name        string                 `json:"name" binding:"required"`
			Config      dto.ChecklistConfigDto `json:"config"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		config, err := dto.AdaptChecklistConfig(body.Config)
		if presentError(ctx, c, err) {
			return
		}

		record, err := uc.NewChecklistUsecase().CreateChecklist(ctx, models.CreateChecklistInput{
			IndicatorId: body.IndicatorId,
			Name:        body.Name,
			Config:      config,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"checklist": dto.AdaptChecklistRecordDto(record)})
	}
}

func handleGetChecklist(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var uri checklistIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		record, err := uc.NewChecklistUsecase().GetChecklist(ctx, uri.ChecklistId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"checklist": dto.AdaptChecklistRecordDto(record)})
	}
}

func handleUpdateChecklist(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var uri checklistIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var body struct {
			Name   *string                 `json:"name"`
			Config *dto.ChecklistConfigDto `json:"config"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		input := models.UpdateChecklistInput{Id: uri.ChecklistId, Name: body.Name}
		if body.Config != nil {
			config, err := dto.AdaptChecklistConfig(*body.Config)
			if presentError(ctx, c, err) {
				return
			}
			input.Config = &config
		}

		record, err := uc.NewChecklistUsecase().UpdateChecklist(ctx, input)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"checklist": dto.AdaptChecklistRecordDto(record)})
	}
}

func handlePublishChecklist(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var uri checklistIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		record, report, err := uc.NewChecklistUsecase().PublishChecklist(ctx, uri.ChecklistId)
		// A blocked publication still returns the full report so the builder
		// can show what to fix.
		if errors.Is(err, models.ErrChecklistNotValid) || errors.Is(err, models.ErrChecklistWarningsBlockPublish) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message":           err.Error(),
				"validation_report": dto.AdaptValidationReportDto(report),
			})
			return
		}
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"checklist":         dto.AdaptChecklistRecordDto(record),
			"validation_report": dto.AdaptValidationReportDto(report),
		})
	}
}

func handleListChecklistsForIndicator(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var uri indicatorIdUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		records, err := uc.NewChecklistUsecase().ListChecklistsForIndicator(ctx, uri.IndicatorId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"checklists": pure_utils.Map(records, dto.AdaptChecklistRecordDto)})
	}
}
