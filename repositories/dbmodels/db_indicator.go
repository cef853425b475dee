package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/models/checklist"
	"github.com/lgu-seal/sglgb-backend/utils"
)

type DBIndicator struct {
	Id                string      `db:"id"`
	GovernanceAreaId  string      `db:"governance_area_id"`
	Code              string      `db:"code"`
	Name              string      `db:"name"`
	ParentId          null.String `db:"parent_id"`
	AutoCalcMethod    string      `db:"auto_calc_method"`
	LogicalOperator   string      `db:"logical_operator"`
	SelectionMode     string      `db:"selection_mode"`
	BbiId             null.String `db:"bbi_id"`
	CalculationSchema []byte      `db:"calculation_schema"`
	CreatedAt         time.Time   `db:"created_at"`
	UpdatedAt         time.Time   `db:"updated_at"`
}

const TABLE_INDICATORS = "indicators"

var SelectIndicatorColumns = utils.ColumnList[DBIndicator]()

// AdaptIndicator maps one arena row. Child ids are attached afterwards by the
// repository, once every sibling of the governance area is loaded.
func AdaptIndicator(db DBIndicator) (models.Indicator, error) {
	indicator := models.Indicator{
		Id:               db.Id,
		GovernanceAreaId: db.GovernanceAreaId,
		Code:             db.Code,
		Name:             db.Name,
		AutoCalcMethod:   models.AutoCalcMethodFrom(db.AutoCalcMethod),
		LogicalOperator:  checklist.LogicOperatorFrom(db.LogicalOperator),
		SelectionMode:    models.SelectionModeFrom(db.SelectionMode),
		CreatedAt:        db.CreatedAt,
		UpdatedAt:        db.UpdatedAt,
	}
	if db.ParentId.Valid {
		indicator.ParentId = &db.ParentId.String
	}
	if db.BbiId.Valid {
		indicator.BbiId = &db.BbiId.String
	}
	if len(db.CalculationSchema) > 0 {
		schema, err := DeserializeChecklistConfig(db.CalculationSchema)
		if err != nil {
			return models.Indicator{}, err
		}
		indicator.CalculationSchema = &schema
	}
	return indicator, nil
}
