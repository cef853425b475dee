package usecases

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/repositories"
	"github.com/lgu-seal/sglgb-backend/usecases/aggregation"
	"github.com/lgu-seal/sglgb-backend/usecases/evaluation"
	"github.com/lgu-seal/sglgb-backend/usecases/reporting"
	"github.com/lgu-seal/sglgb-backend/utils"
)

type AssessmentUsecase struct {
	executorGetter       repositories.TransactionFactory
	assessmentRepository repositories.AssessmentRepository
	indicatorRepository  repositories.IndicatorRepository
	bbiRepository        repositories.BbiRepository
	evaluationCache      *lru.Cache[string, evaluation.Result]
}

// EvaluateIndicator computes and stores the verdict of one leaf indicator
// from its published calculation schema and the submitted response. An
// assessment without a stored response evaluates as an empty submission, so
// assessors can preview the verdict while filling the form.
func (u AssessmentUsecase) EvaluateIndicator(ctx context.Context, assessmentId, indicatorId string) (evaluation.Result, error) {
	exec := u.executorGetter.Executor()

	if _, err := u.assessmentRepository.GetAssessment(ctx, exec, assessmentId); err != nil {
		return evaluation.Result{}, err
	}
	indicator, err := u.indicatorRepository.GetIndicator(ctx, exec, indicatorId)
	if err != nil {
		return evaluation.Result{}, err
	}
	if indicator.CalculationSchema == nil {
		return evaluation.Result{}, errors.WithDetailf(models.ErrNoCalculationSchema,
			"indicator %s", indicator.Code)
	}

	payload := []byte(nil)
	response, err := u.assessmentRepository.GetIndicatorResponse(ctx, exec, assessmentId, indicatorId)
	switch {
	case err == nil:
		payload = response.Payload
	case errors.Is(err, models.NotFoundError):
		// No response yet: evaluate the schema against an empty submission.
	default:
		return evaluation.Result{}, err
	}

	result, err := u.evaluate(ctx, indicator, payload)
	if err != nil {
		return evaluation.Result{}, err
	}

	err = u.assessmentRepository.UpsertIndicatorVerdict(ctx, exec, models.IndicatorVerdictRecord{
		AssessmentId: assessmentId,
		IndicatorId:  indicatorId,
		Verdict:      result.Verdict,
		CalculatedAt: time.Now(),
	})
	if err != nil {
		return evaluation.Result{}, err
	}
	return result, nil
}

// evaluate runs the schema evaluation through the memoization cache. The key
// combines the schema version (the indicator's update timestamp, bumped on
// every publication) with a hash of the raw payload.
func (u AssessmentUsecase) evaluate(ctx context.Context, indicator models.Indicator, payload []byte) (evaluation.Result, error) {
	key := fmt.Sprintf("%s|%d|%x", indicator.Id, indicator.UpdatedAt.UnixNano(), sha256.Sum256(payload))
	if cached, ok := u.evaluationCache.Get(key); ok {
		return cached, nil
	}

	responses := map[string]any{}
	if len(payload) > 0 {
		parsed, err := evaluation.ParseResponsePayload(payload)
		if err != nil {
			return evaluation.Result{}, errors.Wrapf(models.UnprocessableEntityError,
				"invalid response payload for indicator %s: %v", indicator.Code, err)
		}
		responses = parsed
	}

	result := evaluation.Evaluate(*indicator.CalculationSchema, responses)
	u.evaluationCache.Add(key, result)

	utils.LoggerFromContext(ctx).DebugContext(ctx, "evaluated indicator",
		"indicator_code", indicator.Code, "status", result.Verdict.Status.String())
	return result, nil
}

// CalculateAssessment rolls the whole indicator tree of the assessment's
// governance area up into a compliance report: leaf verdicts are computed
// from stored responses, manual verdicts pass through untouched, parents
// combine their applicable children, and BBI functionality ratings are
// derived from the result. The report replaces whatever an earlier
// calculation stored.
func (u AssessmentUsecase) CalculateAssessment(ctx context.Context, assessmentId string) (models.ComplianceReport, error) {
	exec := u.executorGetter.Executor()

	assessment, err := u.assessmentRepository.GetAssessment(ctx, exec, assessmentId)
	if err != nil {
		return models.ComplianceReport{}, err
	}
	tree, err := u.indicatorRepository.ListIndicatorsByGovernanceArea(ctx, exec, assessment.GovernanceAreaId)
	if err != nil {
		return models.ComplianceReport{}, err
	}
	bbis, err := u.bbiRepository.ListBbis(ctx, exec)
	if err != nil {
		return models.ComplianceReport{}, err
	}

	leafVerdicts, err := u.collectLeafVerdicts(ctx, exec, assessmentId, tree)
	if err != nil {
		return models.ComplianceReport{}, err
	}
	selections, err := u.collectScenarioSelections(ctx, exec, assessmentId)
	if err != nil {
		return models.ComplianceReport{}, err
	}

	output := aggregation.Aggregate(aggregation.Input{
		Tree:               tree,
		LeafVerdicts:       leafVerdicts,
		ScenarioSelections: selections,
	})
	report := reporting.AssembleReport(assessment, tree, bbis, output, time.Now())

	err = u.executorGetter.Transaction(ctx, func(tx repositories.Executor) error {
		for indicatorId, verdict := range report.Verdicts {
			err := u.assessmentRepository.UpsertIndicatorVerdict(ctx, tx, models.IndicatorVerdictRecord{
				AssessmentId: assessmentId,
				IndicatorId:  indicatorId,
				Verdict:      verdict,
				CalculatedAt: report.CalculatedAt,
			})
			if err != nil {
				return err
			}
		}
		err := u.bbiRepository.ReplaceBbiComplianceResults(ctx, tx, assessmentId, report.BbiResults)
		if err != nil {
			return err
		}
		return u.assessmentRepository.UpdateAssessmentStatus(ctx, tx, assessmentId, models.AssessmentCalculated)
	})
	if err != nil {
		return models.ComplianceReport{}, err
	}

	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "assessment calculated",
		"assessment_id", assessmentId,
		"indicators", len(report.Verdicts),
		"bbis", len(report.BbiResults),
		"anomalies", len(report.Anomalies))
	return report, nil
}

// GetBbiResults rereads the stored report of the latest calculation.
func (u AssessmentUsecase) GetBbiResults(ctx context.Context, assessmentId string) ([]models.BbiComplianceResult, error) {
	exec := u.executorGetter.Executor()
	if _, err := u.assessmentRepository.GetAssessment(ctx, exec, assessmentId); err != nil {
		return nil, err
	}
	return u.bbiRepository.ListBbiComplianceResults(ctx, exec, assessmentId)
}

// collectLeafVerdicts gathers the verdict of every indicator the aggregator
// will not compute itself: manual verdicts assigned by validators, and leaf
// evaluations from stored responses. Leaves without a published schema are
// left out on purpose so the aggregator reports them instead of guessing.
func (u AssessmentUsecase) collectLeafVerdicts(
	ctx context.Context,
	exec repositories.Executor,
	assessmentId string,
	tree []models.Indicator,
) (map[string]models.ComplianceVerdict, error) {
	leafVerdicts := make(map[string]models.ComplianceVerdict)

	manualVerdicts, err := u.assessmentRepository.ListManualVerdicts(ctx, exec, assessmentId)
	if err != nil {
		return nil, err
	}
	for _, manual := range manualVerdicts {
		leafVerdicts[manual.IndicatorId] = models.ComplianceVerdict{
			Status: manual.Status,
			Remark: manual.Remark,
		}
	}

	responses, err := u.assessmentRepository.ListIndicatorResponses(ctx, exec, assessmentId)
	if err != nil {
		return nil, err
	}
	payloads := make(map[string][]byte, len(responses))
	for _, response := range responses {
		payloads[response.IndicatorId] = response.Payload
	}

	for _, indicator := range tree {
		if indicator.AutoCalcMethod == models.CalcManual {
			continue
		}
		if !indicator.IsLeaf() || indicator.CalculationSchema == nil {
			continue
		}
		if _, assigned := leafVerdicts[indicator.Id]; assigned {
			continue
		}
		result, err := u.evaluate(ctx, indicator, payloads[indicator.Id])
		if err != nil {
			return nil, err
		}
		leafVerdicts[indicator.Id] = result.Verdict
	}
	return leafVerdicts, nil
}

func (u AssessmentUsecase) collectScenarioSelections(
	ctx context.Context,
	exec repositories.Executor,
	assessmentId string,
) (map[string]string, error) {
	selections, err := u.assessmentRepository.ListScenarioSelections(ctx, exec, assessmentId)
	if err != nil {
		return nil, err
	}
	byIndicator := make(map[string]string, len(selections))
	for _, selection := range selections {
		byIndicator[selection.IndicatorId] = selection.ChildId
	}
	return byIndicator, nil
}
