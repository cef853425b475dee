package models

import (
	"time"

	"github.com/lgu-seal/sglgb-backend/models/checklist"
)

type ChecklistStatus int

const (
	ChecklistDraft ChecklistStatus = iota
	ChecklistPublished
	UnknownChecklistStatus
)

func (s ChecklistStatus) String() string {
	switch s {
	case ChecklistDraft:
		return "draft"
	case ChecklistPublished:
		return "published"
	}
	return "unknown"
}

func ChecklistStatusFrom(s string) ChecklistStatus {
	switch s {
	case "draft":
		return ChecklistDraft
	case "published":
		return ChecklistPublished
	}
	return UnknownChecklistStatus
}

// ChecklistRecord is a stored checklist configuration and its lifecycle state.
// Only published checklists are served to assessments as calculation schemas.
type ChecklistRecord struct {
	Id          string
	IndicatorId string
	Name        string
	Config      checklist.Config
	Status      ChecklistStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt *time.Time
}

type CreateChecklistInput struct {
	IndicatorId string
	Name        string
	Config      checklist.Config
}

type UpdateChecklistInput struct {
	Id     string
	Name   *string
	Config *checklist.Config
}
