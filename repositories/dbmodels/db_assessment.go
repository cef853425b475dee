package dbmodels

import (
	"time"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/utils"
)

type DBAssessment struct {
	Id               string    `db:"id"`
	BarangayName     string    `db:"barangay_name"`
	GovernanceAreaId string    `db:"governance_area_id"`
	Status           string    `db:"status"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

const TABLE_ASSESSMENTS = "assessments"

var SelectAssessmentColumns = utils.ColumnList[DBAssessment]()

func AdaptAssessment(db DBAssessment) (models.Assessment, error) {
	return models.Assessment{
		Id:               db.Id,
		BarangayName:     db.BarangayName,
		GovernanceAreaId: db.GovernanceAreaId,
		Status:           models.AssessmentStatusFrom(db.Status),
		CreatedAt:        db.CreatedAt,
		UpdatedAt:        db.UpdatedAt,
	}, nil
}

type DBIndicatorResponse struct {
	AssessmentId string    `db:"assessment_id"`
	IndicatorId  string    `db:"indicator_id"`
	Payload      []byte    `db:"payload"`
	SubmittedAt  time.Time `db:"submitted_at"`
}

const TABLE_ASSESSMENT_RESPONSES = "assessment_responses"

var SelectIndicatorResponseColumns = utils.ColumnList[DBIndicatorResponse]()

func AdaptIndicatorResponse(db DBIndicatorResponse) (models.IndicatorResponse, error) {
	return models.IndicatorResponse{
		AssessmentId: db.AssessmentId,
		IndicatorId:  db.IndicatorId,
		Payload:      db.Payload,
		SubmittedAt:  db.SubmittedAt,
	}, nil
}

type DBManualVerdict struct {
	AssessmentId string    `db:"assessment_id"`
	IndicatorId  string    `db:"indicator_id"`
	Status       string    `db:"status"`
	Remark       string    `db:"remark"`
	ValidatorId  string    `db:"validator_id"`
	DecidedAt    time.Time `db:"decided_at"`
}

const TABLE_MANUAL_VERDICTS = "manual_verdicts"

var SelectManualVerdictColumns = utils.ColumnList[DBManualVerdict]()

func AdaptManualVerdict(db DBManualVerdict) (models.ManualVerdict, error) {
	return models.ManualVerdict{
		AssessmentId: db.AssessmentId,
		IndicatorId:  db.IndicatorId,
		Status:       models.ComplianceStatusFrom(db.Status),
		Remark:       db.Remark,
		ValidatorId:  db.ValidatorId,
		DecidedAt:    db.DecidedAt,
	}, nil
}

type DBScenarioSelection struct {
	AssessmentId string `db:"assessment_id"`
	IndicatorId  string `db:"indicator_id"`
	ChildId      string `db:"child_id"`
}

const TABLE_SCENARIO_SELECTIONS = "scenario_selections"

var SelectScenarioSelectionColumns = utils.ColumnList[DBScenarioSelection]()

func AdaptScenarioSelection(db DBScenarioSelection) (models.ScenarioSelection, error) {
	return models.ScenarioSelection{
		AssessmentId: db.AssessmentId,
		IndicatorId:  db.IndicatorId,
		ChildId:      db.ChildId,
	}, nil
}

type DBIndicatorVerdict struct {
	AssessmentId string    `db:"assessment_id"`
	IndicatorId  string    `db:"indicator_id"`
	Status       string    `db:"status"`
	Remark       string    `db:"remark"`
	CalculatedAt time.Time `db:"calculated_at"`
}

const TABLE_INDICATOR_VERDICTS = "indicator_verdicts"

var SelectIndicatorVerdictColumns = utils.ColumnList[DBIndicatorVerdict]()

func AdaptIndicatorVerdict(db DBIndicatorVerdict) (models.IndicatorVerdictRecord, error) {
	return models.IndicatorVerdictRecord{
		AssessmentId: db.AssessmentId,
		IndicatorId:  db.IndicatorId,
		Verdict: models.ComplianceVerdict{
			Status: models.ComplianceStatusFrom(db.Status),
			Remark: db.Remark,
		},
		CalculatedAt: db.CalculatedAt,
	}, nil
}
