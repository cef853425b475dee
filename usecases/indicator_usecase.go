package usecases

import (
	"context"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/repositories"
)

type IndicatorUsecase struct {
	executorGetter      repositories.TransactionFactory
	indicatorRepository repositories.IndicatorRepository
}

func (u IndicatorUsecase) GetIndicator(ctx context.Context, id string) (models.Indicator, error) {
	return u.indicatorRepository.GetIndicator(ctx, u.executorGetter.Executor(), id)
}

func (u IndicatorUsecase) ListIndicators(ctx context.Context, governanceAreaId string) ([]models.Indicator, error) {
	return u.indicatorRepository.ListIndicatorsByGovernanceArea(ctx, u.executorGetter.Executor(), governanceAreaId)
}

func (u IndicatorUsecase) ListGovernanceAreas(ctx context.Context) ([]models.GovernanceArea, error) {
	return u.indicatorRepository.ListGovernanceAreas(ctx, u.executorGetter.Executor())
}
