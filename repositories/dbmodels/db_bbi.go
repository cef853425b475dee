package dbmodels

import (
	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/utils"
)

type DBBbi struct {
	Id           string `db:"id"`
	Name         string `db:"name"`
	Abbreviation string `db:"abbreviation"`
}

const TABLE_BBIS = "bbis"

var SelectBbiColumns = utils.ColumnList[DBBbi]()

func AdaptBbi(db DBBbi) (models.Bbi, error) {
	return models.Bbi{
		Id:           db.Id,
		Name:         db.Name,
		Abbreviation: db.Abbreviation,
	}, nil
}
