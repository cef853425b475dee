package usecases

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lgu-seal/sglgb-backend/repositories"
	"github.com/lgu-seal/sglgb-backend/usecases/evaluation"
)

// evaluationCacheSize bounds the verdict memoization cache. Entries are keyed
// by a hash of the schema and the response payload, so a re-submission with
// identical content is a cache hit.
const evaluationCacheSize = 512

type Usecases struct {
	Repositories    repositories.Repositories
	evaluationCache *lru.Cache[string, evaluation.Result]
}

func NewUsecases(repos repositories.Repositories) (Usecases, error) {
	cache, err := lru.New[string, evaluation.Result](evaluationCacheSize)
	if err != nil {
		return Usecases{}, err
	}
	return Usecases{
		Repositories:    repos,
		evaluationCache: cache,
	}, nil
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorGetter:   usecases.Repositories.ExecutorGetter,
		healthRepository: usecases.Repositories.HealthRepository,
	}
}

func (usecases *Usecases) NewChecklistUsecase() ChecklistUsecase {
	return ChecklistUsecase{
		executorGetter:      usecases.Repositories.ExecutorGetter,
		checklistRepository: usecases.Repositories.ChecklistRepository,
	}
}

func (usecases *Usecases) NewIndicatorUsecase() IndicatorUsecase {
	return IndicatorUsecase{
		executorGetter:      usecases.Repositories.ExecutorGetter,
		indicatorRepository: usecases.Repositories.IndicatorRepository,
	}
}

func (usecases *Usecases) NewAssessmentUsecase() AssessmentUsecase {
	return AssessmentUsecase{
		executorGetter:       usecases.Repositories.ExecutorGetter,
		assessmentRepository: usecases.Repositories.AssessmentRepository,
		indicatorRepository:  usecases.Repositories.IndicatorRepository,
		bbiRepository:        usecases.Repositories.BbiRepository,
		evaluationCache:      usecases.evaluationCache,
	}
}
