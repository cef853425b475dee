package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/repositories/dbmodels"
)

type BbiRepository interface {
	ListBbis(ctx context.Context, exec Executor) ([]models.Bbi, error)
	ListBbiComplianceResults(ctx context.Context, exec Executor, assessmentId string) ([]models.BbiComplianceResult, error)
	ReplaceBbiComplianceResults(ctx context.Context, exec Executor, assessmentId string, results []models.BbiComplianceResult) error
}

type BbiRepositoryPostgresql struct{}

func (repo *BbiRepositoryPostgresql) ListBbis(ctx context.Context, exec Executor) ([]models.Bbi, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectBbiColumns...).
			From(dbmodels.TABLE_BBIS).
			OrderBy("abbreviation"),
		dbmodels.AdaptBbi,
	)
}

func (repo *BbiRepositoryPostgresql) ListBbiComplianceResults(
	ctx context.Context,
	exec Executor,
	assessmentId string,
) ([]models.BbiComplianceResult, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectBbiComplianceResultColumns...).
			From(dbmodels.TABLE_BBI_COMPLIANCE_RESULTS).
			Where(squirrel.Eq{"assessment_id": assessmentId}).
			OrderBy("bbi_abbreviation"),
		dbmodels.AdaptBbiComplianceResult,
	)
}

// ReplaceBbiComplianceResults swaps the stored report of an assessment for a
// freshly computed one. Results of a single calculation live and die together.
func (repo *BbiRepositoryPostgresql) ReplaceBbiComplianceResults(
	ctx context.Context,
	exec Executor,
	assessmentId string,
	results []models.BbiComplianceResult,
) error {
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_BBI_COMPLIANCE_RESULTS).
			Where(squirrel.Eq{"assessment_id": assessmentId}),
	)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		return nil
	}

	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_BBI_COMPLIANCE_RESULTS).
		Columns("id", "assessment_id", "bbi_id", "bbi_name", "bbi_abbreviation", "indicator_code",
			"governance_area_id", "compliance_percentage", "compliance_rating",
			"sub_indicators_passed", "sub_indicators_total", "sub_indicator_results", "calculated_at")

	for _, result := range results {
		subResults, err := dbmodels.SerializeSubIndicatorResults(result.SubIndicatorResults)
		if err != nil {
			return err
		}
		query = query.Values(result.Id, result.AssessmentId, result.BbiId, result.BbiName,
			result.BbiAbbreviation, result.IndicatorCode, result.GovernanceAreaId,
			result.CompliancePercentage, result.ComplianceRating.String(),
			result.SubIndicatorsPassed, result.SubIndicatorsTotal, subResults, result.CalculatedAt)
	}

	return ExecBuilder(ctx, exec, query)
}
