package usecases

import (
	"context"

	"github.com/lgu-seal/sglgb-backend/repositories"
)

type LivenessUsecase struct {
	executorGetter   repositories.TransactionFactory
	healthRepository repositories.HealthRepository
}

func (u LivenessUsecase) Liveness(ctx context.Context) error {
	return u.healthRepository.Liveness(ctx, u.executorGetter.Executor())
}
