package dto

import (
	"time"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
)

type IndicatorDto struct {
	Id                string              `json:"id"`
	GovernanceAreaId  string              `json:"governance_area_id"`
	Code              string              `json:"code"`
	Name              string              `json:"name"`
	ParentId          *string             `json:"parent_id,omitempty"`
	ChildIds          []string            `json:"child_ids,omitempty"`
	AutoCalcMethod    string              `json:"auto_calc_method"`
	LogicalOperator   string              `json:"logical_operator"`
	SelectionMode     string              `json:"selection_mode"`
	BbiId             *string             `json:"bbi_id,omitempty"`
	CalculationSchema *ChecklistConfigDto `json:"calculation_schema,omitempty"`
}

func AdaptIndicatorDto(indicator models.Indicator) IndicatorDto {
	dto := IndicatorDto{
		Id:               indicator.Id,
		GovernanceAreaId: indicator.GovernanceAreaId,
		Code:             indicator.Code,
		Name:             indicator.Name,
		ParentId:         indicator.ParentId,
		ChildIds:         indicator.ChildIds,
		AutoCalcMethod:   indicator.AutoCalcMethod.String(),
		LogicalOperator:  indicator.LogicalOperator.String(),
		SelectionMode:    indicator.SelectionMode.String(),
		BbiId:            indicator.BbiId,
	}
	if indicator.CalculationSchema != nil {
		dto.CalculationSchema = pure_utils.Ptr(AdaptChecklistConfigDto(*indicator.CalculationSchema))
	}
	return dto
}

type GovernanceAreaDto struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

func AdaptGovernanceAreaDto(area models.GovernanceArea) GovernanceAreaDto {
	return GovernanceAreaDto{
		Id:   area.Id,
		Name: area.Name,
		Code: area.Code,
	}
}

type ChecklistRecordDto struct {
	Id          string             `json:"id"`
	IndicatorId string             `json:"indicator_id"`
	Name        string             `json:"name"`
	Status      string             `json:"status"`
	Config      ChecklistConfigDto `json:"config"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
	PublishedAt *string            `json:"published_at,omitempty"`
}

func AdaptChecklistRecordDto(record models.ChecklistRecord) ChecklistRecordDto {
	dto := ChecklistRecordDto{
		Id:          record.Id,
		IndicatorId: record.IndicatorId,
		Name:        record.Name,
		Status:      record.Status.String(),
		Config:      AdaptChecklistConfigDto(record.Config),
		CreatedAt:   record.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   record.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if record.PublishedAt != nil {
		dto.PublishedAt = pure_utils.Ptr(record.PublishedAt.UTC().Format(time.RFC3339))
	}
	return dto
}
