package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
)

func SqlToListOfModels[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) ([]Model, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}

	dbModels, err := pgx.CollectRows(rows, pgx.RowToStructByName[DBModel])
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect rows")
	}

	return pure_utils.MapErr(dbModels, adapter)
}

func SqlToModel[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (Model, error) {
	var zero Model

	sql, args, err := query.ToSql()
	if err != nil {
		return zero, errors.Wrap(err, "failed to build query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return zero, errors.Wrap(err, "failed to execute query")
	}

	dbModel, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[DBModel])
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, errors.WithDetail(models.NotFoundError, err.Error())
	} else if err != nil {
		return zero, errors.Wrap(err, "failed to collect row")
	}

	return adapter(dbModel)
}

func ExecBuilder(ctx context.Context, exec Executor, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "failed to build query")
	}
	_, err = exec.Exec(ctx, sql, args...)
	return errors.Wrap(err, "failed to execute query")
}
