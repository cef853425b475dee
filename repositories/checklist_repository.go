package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/repositories/dbmodels"
)

type ChecklistRepository interface {
	GetChecklist(ctx context.Context, exec Executor, id string) (models.ChecklistRecord, error)
	ListChecklistsForIndicator(ctx context.Context, exec Executor, indicatorId string) ([]models.ChecklistRecord, error)
	CreateChecklist(ctx context.Context, exec Executor, input models.CreateChecklistInput, newChecklistId string) error
	UpdateChecklist(ctx context.Context, exec Executor, input models.UpdateChecklistInput) error
	PublishChecklist(ctx context.Context, exec Executor, id string) error
}

type ChecklistRepositoryPostgresql struct{}

func (repo *ChecklistRepositoryPostgresql) GetChecklist(ctx context.Context, exec Executor, id string) (models.ChecklistRecord, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectChecklistColumns...).
			From(dbmodels.TABLE_CHECKLISTS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptChecklistRecord,
	)
}

func (repo *ChecklistRepositoryPostgresql) ListChecklistsForIndicator(ctx context.Context, exec Executor, indicatorId string) ([]models.ChecklistRecord, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectChecklistColumns...).
			From(dbmodels.TABLE_CHECKLISTS).
			Where(squirrel.Eq{"indicator_id": indicatorId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptChecklistRecord,
	)
}

func (repo *ChecklistRepositoryPostgresql) CreateChecklist(ctx context.Context, exec Executor, input models.CreateChecklistInput, newChecklistId string) error {
	config, err := dbmodels.SerializeChecklistConfig(input.Config)
	if err != nil {
		return err
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CHECKLISTS).
			Columns("id", "indicator_id", "name", "config", "status").
			Values(newChecklistId, input.IndicatorId, input.Name, config, models.ChecklistDraft.String()),
	)
}

func (repo *ChecklistRepositoryPostgresql) UpdateChecklist(ctx context.Context, exec Executor, input models.UpdateChecklistInput) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CHECKLISTS).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": input.Id})

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.Config != nil {
		config, err := dbmodels.SerializeChecklistConfig(*input.Config)
		if err != nil {
			return err
		}
		query = query.Set("config", config)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *ChecklistRepositoryPostgresql) PublishChecklist(ctx context.Context, exec Executor, id string) error {
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CHECKLISTS).
			Set("status", models.ChecklistPublished.String()).
			Set("published_at", squirrel.Expr("NOW()")).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}),
	)
	if err != nil {
		return err
	}

	// The published config becomes the indicator's calculation schema.
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_INDICATORS).
			Set("calculation_schema", squirrel.Expr(
				"(SELECT config FROM "+dbmodels.TABLE_CHECKLISTS+" WHERE id = ?)", id)).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Expr(
				"id = (SELECT indicator_id FROM "+dbmodels.TABLE_CHECKLISTS+" WHERE id = ?)", id)),
	)
}
