package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/repositories/dbmodels"
)

type AssessmentRepository interface {
	GetAssessment(ctx context.Context, exec Executor, id string) (models.Assessment, error)
	UpdateAssessmentStatus(ctx context.Context, exec Executor, id string, status models.AssessmentStatus) error
	GetIndicatorResponse(ctx context.Context, exec Executor, assessmentId, indicatorId string) (models.IndicatorResponse, error)
	ListIndicatorResponses(ctx context.Context, exec Executor, assessmentId string) ([]models.IndicatorResponse, error)
	ListManualVerdicts(ctx context.Context, exec Executor, assessmentId string) ([]models.ManualVerdict, error)
	ListScenarioSelections(ctx context.Context, exec Executor, assessmentId string) ([]models.ScenarioSelection, error)
	ListIndicatorVerdicts(ctx context.Context, exec Executor, assessmentId string) ([]models.IndicatorVerdictRecord, error)
	UpsertIndicatorVerdict(ctx context.Context, exec Executor, record models.IndicatorVerdictRecord) error
}

type AssessmentRepositoryPostgresql struct{}

func (repo *AssessmentRepositoryPostgresql) GetAssessment(ctx context.Context, exec Executor, id string) (models.Assessment, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAssessmentColumns...).
			From(dbmodels.TABLE_ASSESSMENTS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptAssessment,
	)
}

func (repo *AssessmentRepositoryPostgresql) UpdateAssessmentStatus(
	ctx context.Context,
	exec Executor,
	id string,
	status models.AssessmentStatus,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_ASSESSMENTS).
			Set("status", status.String()).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}),
	)
}

func (repo *AssessmentRepositoryPostgresql) GetIndicatorResponse(
	ctx context.Context,
	exec Executor,
	assessmentId, indicatorId string,
) (models.IndicatorResponse, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectIndicatorResponseColumns...).
			From(dbmodels.TABLE_ASSESSMENT_RESPONSES).
			Where(squirrel.Eq{"assessment_id": assessmentId, "indicator_id": indicatorId}),
		dbmodels.AdaptIndicatorResponse,
	)
}

func (repo *AssessmentRepositoryPostgresql) ListIndicatorResponses(
	ctx context.Context,
	exec Executor,
	assessmentId string,
) ([]models.IndicatorResponse, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectIndicatorResponseColumns...).
			From(dbmodels.TABLE_ASSESSMENT_RESPONSES).
			Where(squirrel.Eq{"assessment_id": assessmentId}),
		dbmodels.AdaptIndicatorResponse,
	)
}

func (repo *AssessmentRepositoryPostgresql) ListManualVerdicts(
	ctx context.Context,
	exec Executor,
	assessmentId string,
) ([]models.ManualVerdict, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectManualVerdictColumns...).
			From(dbmodels.TABLE_MANUAL_VERDICTS).
			Where(squirrel.Eq{"assessment_id": assessmentId}),
		dbmodels.AdaptManualVerdict,
	)
}

func (repo *AssessmentRepositoryPostgresql) ListScenarioSelections(
	ctx context.Context,
	exec Executor,
	assessmentId string,
) ([]models.ScenarioSelection, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectScenarioSelectionColumns...).
			From(dbmodels.TABLE_SCENARIO_SELECTIONS).
			Where(squirrel.Eq{"assessment_id": assessmentId}),
		dbmodels.AdaptScenarioSelection,
	)
}

func (repo *AssessmentRepositoryPostgresql) ListIndicatorVerdicts(
	ctx context.Context,
	exec Executor,
	assessmentId string,
) ([]models.IndicatorVerdictRecord, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectIndicatorVerdictColumns...).
			From(dbmodels.TABLE_INDICATOR_VERDICTS).
			Where(squirrel.Eq{"assessment_id": assessmentId}),
		dbmodels.AdaptIndicatorVerdict,
	)
}

func (repo *AssessmentRepositoryPostgresql) UpsertIndicatorVerdict(
	ctx context.Context,
	exec Executor,
	record models.IndicatorVerdictRecord,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_INDICATOR_VERDICTS).
			Columns("assessment_id", "indicator_id", "status", "remark", "calculated_at").
			Values(record.AssessmentId, record.IndicatorId, record.Verdict.Status.String(),
				record.Verdict.Remark, record.CalculatedAt).
			Suffix(`ON CONFLICT (assessment_id, indicator_id) DO UPDATE
				SET status = EXCLUDED.status, remark = EXCLUDED.remark, calculated_at = EXCLUDED.calculated_at`),
	)
}
