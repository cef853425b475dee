package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/repositories/dbmodels"
)

type IndicatorRepository interface {
	GetIndicator(ctx context.Context, exec Executor, id string) (models.Indicator, error)
	ListIndicatorsByGovernanceArea(ctx context.Context, exec Executor, governanceAreaId string) ([]models.Indicator, error)
	ListGovernanceAreas(ctx context.Context, exec Executor) ([]models.GovernanceArea, error)
}

type IndicatorRepositoryPostgresql struct{}

func (repo *IndicatorRepositoryPostgresql) GetIndicator(ctx context.Context, exec Executor, id string) (models.Indicator, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectIndicatorColumns...).
			From(dbmodels.TABLE_INDICATORS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptIndicator,
	)
}

// ListIndicatorsByGovernanceArea loads the whole arena of a governance area
// and wires up child id slices from the parent references, ordered by
// indicator code so traversal order is stable.
func (repo *IndicatorRepositoryPostgresql) ListIndicatorsByGovernanceArea(
	ctx context.Context,
	exec Executor,
	governanceAreaId string,
) ([]models.Indicator, error) {
	indicators, err := SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectIndicatorColumns...).
			From(dbmodels.TABLE_INDICATORS).
			Where(squirrel.Eq{"governance_area_id": governanceAreaId}).
			OrderBy("code"),
		dbmodels.AdaptIndicator,
	)
	if err != nil {
		return nil, err
	}
	return attachChildIds(indicators), nil
}

func (repo *IndicatorRepositoryPostgresql) ListGovernanceAreas(ctx context.Context, exec Executor) ([]models.GovernanceArea, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectGovernanceAreaColumns...).
			From(dbmodels.TABLE_GOVERNANCE_AREAS).
			OrderBy("code"),
		dbmodels.AdaptGovernanceArea,
	)
}

func attachChildIds(indicators []models.Indicator) []models.Indicator {
	// The arena arrives ordered by code, so children accumulate in code order.
	childrenByParent := make(map[string][]string)
	for _, indicator := range indicators {
		if indicator.ParentId != nil {
			childrenByParent[*indicator.ParentId] = append(childrenByParent[*indicator.ParentId], indicator.Id)
		}
	}
	for i := range indicators {
		indicators[i].ChildIds = childrenByParent[indicators[i].Id]
	}
	return indicators
}
