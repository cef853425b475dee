package dbmodels

import (
	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/utils"
)

type DBGovernanceArea struct {
	Id   string `db:"id"`
	Name string `db:"name"`
	Code string `db:"code"`
}

const TABLE_GOVERNANCE_AREAS = "governance_areas"

var SelectGovernanceAreaColumns = utils.ColumnList[DBGovernanceArea]()

func AdaptGovernanceArea(db DBGovernanceArea) (models.GovernanceArea, error) {
	return models.GovernanceArea{
		Id:   db.Id,
		Name: db.Name,
		Code: db.Code,
	}, nil
}
