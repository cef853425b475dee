package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
	"github.com/lgu-seal/sglgb-backend/utils"
)

type DBBbiComplianceResult struct {
	Id                   string    `db:"id"`
	AssessmentId         string    `db:"assessment_id"`
	BbiId                string    `db:"bbi_id"`
	BbiName              string    `db:"bbi_name"`
	BbiAbbreviation      string    `db:"bbi_abbreviation"`
	IndicatorCode        string    `db:"indicator_code"`
	GovernanceAreaId     string    `db:"governance_area_id"`
	CompliancePercentage float64   `db:"compliance_percentage"`
	ComplianceRating     string    `db:"compliance_rating"`
	SubIndicatorsPassed  int       `db:"sub_indicators_passed"`
	SubIndicatorsTotal   int       `db:"sub_indicators_total"`
	SubIndicatorResults  []byte    `db:"sub_indicator_results"`
	CalculatedAt         time.Time `db:"calculated_at"`
}

const TABLE_BBI_COMPLIANCE_RESULTS = "bbi_compliance_results"

var SelectBbiComplianceResultColumns = utils.ColumnList[DBBbiComplianceResult]()

type dbSubIndicatorResult struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

func AdaptBbiComplianceResult(db DBBbiComplianceResult) (models.BbiComplianceResult, error) {
	var subResults []dbSubIndicatorResult
	if len(db.SubIndicatorResults) > 0 {
		if err := json.Unmarshal(db.SubIndicatorResults, &subResults); err != nil {
			return models.BbiComplianceResult{}, errors.Wrap(err, "failed to deserialize sub-indicator results")
		}
	}

	return models.BbiComplianceResult{
		Id:                   db.Id,
		AssessmentId:         db.AssessmentId,
		BbiId:                db.BbiId,
		BbiName:              db.BbiName,
		BbiAbbreviation:      db.BbiAbbreviation,
		IndicatorCode:        db.IndicatorCode,
		GovernanceAreaId:     db.GovernanceAreaId,
		CompliancePercentage: db.CompliancePercentage,
		ComplianceRating:     models.ComplianceRatingFrom(db.ComplianceRating),
		SubIndicatorsPassed:  db.SubIndicatorsPassed,
		SubIndicatorsTotal:   db.SubIndicatorsTotal,
		SubIndicatorResults: pure_utils.Map(subResults, func(r dbSubIndicatorResult) models.SubIndicatorResult {
			return models.SubIndicatorResult{Code: r.Code, Name: r.Name, Passed: r.Passed}
		}),
		CalculatedAt: db.CalculatedAt,
	}, nil
}

func SerializeSubIndicatorResults(results []models.SubIndicatorResult) ([]byte, error) {
	serialized, err := json.Marshal(pure_utils.Map(results, func(r models.SubIndicatorResult) dbSubIndicatorResult {
		return dbSubIndicatorResult{Code: r.Code, Name: r.Name, Passed: r.Passed}
	}))
	return serialized, errors.Wrap(err, "failed to serialize sub-indicator results")
}
