package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter       ExecutorGetter
	ChecklistRepository  ChecklistRepository
	IndicatorRepository  IndicatorRepository
	AssessmentRepository AssessmentRepository
	BbiRepository        BbiRepository
	HealthRepository     HealthRepository
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter:       NewExecutorGetter(pool),
		ChecklistRepository:  &ChecklistRepositoryPostgresql{},
		IndicatorRepository:  &IndicatorRepositoryPostgresql{},
		AssessmentRepository: &AssessmentRepositoryPostgresql{},
		BbiRepository:        &BbiRepositoryPostgresql{},
		HealthRepository:     &HealthRepositoryPostgresql{},
	}
}
