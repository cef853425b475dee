package repositories

import "context"

type HealthRepository interface {
	Liveness(ctx context.Context, exec Executor) error
}

type HealthRepositoryPostgresql struct{}

func (repo *HealthRepositoryPostgresql) Liveness(ctx context.Context, exec Executor) error {
	_, err := exec.Exec(ctx, "SELECT 1")
	return err
}
