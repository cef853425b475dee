package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/models/checklist"
	"github.com/lgu-seal/sglgb-backend/repositories"
	"github.com/lgu-seal/sglgb-backend/usecases/schema_validation"
)

type ChecklistUsecase struct {
	executorGetter      repositories.TransactionFactory
	checklistRepository repositories.ChecklistRepository
}

func (u ChecklistUsecase) GetChecklist(ctx context.Context, id string) (models.ChecklistRecord, error) {
	return u.checklistRepository.GetChecklist(ctx, u.executorGetter.Executor(), id)
}

func (u ChecklistUsecase) ListChecklistsForIndicator(ctx context.Context, indicatorId string) ([]models.ChecklistRecord, error) {
	return u.checklistRepository.ListChecklistsForIndicator(ctx, u.executorGetter.Executor(), indicatorId)
}

// ValidateChecklistConfig reports structural problems of a checklist
// configuration without touching storage. The report separates blocking
// errors from warnings so the builder frontend can render both.
func (u ChecklistUsecase) ValidateChecklistConfig(config checklist.Config) models.ValidationReport {
	return schema_validation.Validate(config)
}

func (u ChecklistUsecase) CreateChecklist(ctx context.Context, input models.CreateChecklistInput) (models.ChecklistRecord, error) {
	newChecklistId := uuid.NewString()
	err := u.checklistRepository.CreateChecklist(ctx, u.executorGetter.Executor(), input, newChecklistId)
	if err != nil {
		return models.ChecklistRecord{}, err
	}
	return u.checklistRepository.GetChecklist(ctx, u.executorGetter.Executor(), newChecklistId)
}

// UpdateChecklist edits a draft. Published checklists are immutable since
// assessments may already be evaluated against their schema.
func (u ChecklistUsecase) UpdateChecklist(ctx context.Context, input models.UpdateChecklistInput) (models.ChecklistRecord, error) {
	var updated models.ChecklistRecord
	err := u.executorGetter.Transaction(ctx, func(tx repositories.Executor) error {
		record, err := u.checklistRepository.GetChecklist(ctx, tx, input.Id)
		if err != nil {
			return err
		}
		if record.Status != models.ChecklistDraft {
			return errors.WithDetailf(models.ErrChecklistNotDraft, "checklist %s", input.Id)
		}
		if err := u.checklistRepository.UpdateChecklist(ctx, tx, input); err != nil {
			return err
		}
		updated, err = u.checklistRepository.GetChecklist(ctx, tx, input.Id)
		return err
	})
	return updated, err
}

// PublishChecklist runs validation and flips the draft to published, making
// its configuration the calculation schema of the owning indicator.
// Structural errors always block publication. Warnings block too when the
// configuration asks for strict validation.
func (u ChecklistUsecase) PublishChecklist(ctx context.Context, id string) (models.ChecklistRecord, models.ValidationReport, error) {
	var published models.ChecklistRecord
	var report models.ValidationReport

	err := u.executorGetter.Transaction(ctx, func(tx repositories.Executor) error {
		record, err := u.checklistRepository.GetChecklist(ctx, tx, id)
		if err != nil {
			return err
		}
		if record.Status != models.ChecklistDraft {
			return errors.WithDetailf(models.ErrChecklistNotDraft, "checklist %s", id)
		}

		report = schema_validation.Validate(record.Config)
		if !report.IsValid() {
			return errors.WithDetailf(models.ErrChecklistNotValid, "checklist %s", id)
		}
		if record.Config.ValidationMode == checklist.ValidationStrict && len(report.Warnings) > 0 {
			return errors.WithDetailf(models.ErrChecklistWarningsBlockPublish, "checklist %s", id)
		}

		if err := u.checklistRepository.PublishChecklist(ctx, tx, id); err != nil {
			return err
		}
		published, err = u.checklistRepository.GetChecklist(ctx, tx, id)
		return err
	})
	return published, report, err
}
