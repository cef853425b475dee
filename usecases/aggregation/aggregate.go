// Package aggregation rolls leaf verdicts up the indicator tree of a
// governance area and derives BBI functionality ratings. The traversal is
// post-order by construction: a parent's verdict is a function of every
// applicable descendant's verdict.
package aggregation

import (
	"fmt"
	"sort"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/models/checklist"
)

// maxTreeDepth guards the recursive walk against corrupt parent/child data.
// Real governance-area trees are a handful of levels deep.
const maxTreeDepth = 50

// Input gathers everything the aggregator needs. Leaf verdicts cover NONE
// indicators (computed by the evaluator) and MANUAL indicators (assigned by a
// human validator and passed through untouched). Scenario selections say
// which child applies for each one_of indicator; resolving them is external
// to the engine.
type Input struct {
	Tree               []models.Indicator
	LeafVerdicts       map[string]models.ComplianceVerdict
	ScenarioSelections map[string]string
}

// Output maps every indicator to its verdict and lists the institution
// ratings derived from BBI-associated indicators. Anomalies are
// data-integrity faults: the affected indicators carry an Indeterminate
// verdict rather than a fabricated Pass or Fail.
type Output struct {
	Verdicts  map[string]models.ComplianceVerdict
	Ratings   []models.InstitutionRating
	Anomalies []models.AggregationAnomaly
}

type aggregator struct {
	nodes      map[string]models.Indicator
	input      Input
	verdicts   map[string]models.ComplianceVerdict
	anomalies  []models.AggregationAnomaly
	inProgress map[string]bool
}

// Aggregate computes verdicts for the whole tree, children before parents.
func Aggregate(input Input) Output {
	agg := &aggregator{
		nodes:      make(map[string]models.Indicator, len(input.Tree)),
		input:      input,
		verdicts:   make(map[string]models.ComplianceVerdict, len(input.Tree)),
		inProgress: make(map[string]bool),
	}
	for _, node := range input.Tree {
		agg.nodes[node.Id] = node
	}

	for _, node := range input.Tree {
		agg.visit(node.Id, 0)
	}

	return Output{
		Verdicts:  agg.verdicts,
		Ratings:   agg.institutionRatings(),
		Anomalies: agg.anomalies,
	}
}

func (agg *aggregator) visit(id string, depth int) models.ComplianceVerdict {
	if verdict, done := agg.verdicts[id]; done {
		return verdict
	}

	node, ok := agg.nodes[id]
	if !ok {
		// Dangling child reference: the id is linked but not part of the arena.
		return agg.fault(id, models.AnomalyMissingChildVerdict,
			fmt.Sprintf("indicator %s is referenced but not present in the tree", id))
	}

	if agg.inProgress[id] {
		return agg.fault(id, models.AnomalyCycle,
			fmt.Sprintf("indicator %s is part of a parent/child cycle", id))
	}
	if depth > maxTreeDepth {
		return agg.fault(id, models.AnomalyTreeTooDeep,
			fmt.Sprintf("indicator tree exceeds the maximum depth of %d", maxTreeDepth))
	}

	agg.inProgress[id] = true
	defer delete(agg.inProgress, id)

	var verdict models.ComplianceVerdict
	if node.AutoCalcMethod == models.CalcAuto && !node.IsLeaf() {
		verdict = agg.combineChildren(node, depth)
	} else {
		verdict = agg.suppliedVerdict(node)
	}

	agg.verdicts[id] = verdict
	return verdict
}

// suppliedVerdict covers the two cases where the aggregator does not compute
// anything: NONE leaves evaluated from their checklist, and MANUAL indicators
// whose verdict a human validator assigned.
func (agg *aggregator) suppliedVerdict(node models.Indicator) models.ComplianceVerdict {
	verdict, ok := agg.input.LeafVerdicts[node.Id]
	if !ok {
		return agg.fault(node.Id, models.AnomalyMissingChildVerdict,
			fmt.Sprintf("no verdict supplied for indicator %s (%s)", node.Code, node.AutoCalcMethod))
	}
	return verdict
}

func (agg *aggregator) combineChildren(node models.Indicator, depth int) models.ComplianceVerdict {
	childIds, anomaly := agg.applicableChildren(node)
	if anomaly != nil {
		return *anomaly
	}

	statuses := make([]models.ComplianceStatus, 0, len(childIds))
	passed := 0
	for _, childId := range childIds {
		childVerdict := agg.visit(childId, depth+1)
		if childVerdict.Status == models.Indeterminate {
			// An anomaly below already got recorded; it poisons every ancestor.
			return models.ComplianceVerdict{
				Status: models.Indeterminate,
				Remark: fmt.Sprintf("verdict indeterminate: sub-indicator of %s could not be aggregated", node.Code),
			}
		}
		statuses = append(statuses, childVerdict.Status)
		if childVerdict.Status == models.Pass {
			passed++
		}
	}

	var status models.ComplianceStatus
	if node.LogicalOperator == checklist.LogicOr {
		status = models.CombineOr(statuses)
	} else {
		status = models.CombineAnd(statuses)
	}

	return models.ComplianceVerdict{
		Status: status,
		Remark: fmt.Sprintf("%d of %d applicable sub-indicators passed", passed, len(childIds)),
	}
}

func (agg *aggregator) applicableChildren(node models.Indicator) ([]string, *models.ComplianceVerdict) {
	if node.SelectionMode != models.SelectionOneOf {
		return node.ChildIds, nil
	}

	selected, ok := agg.input.ScenarioSelections[node.Id]
	if !ok {
		verdict := agg.fault(node.Id, models.AnomalyMissingScenarioChoice,
			fmt.Sprintf("indicator %s uses one_of selection but no scenario was chosen", node.Code))
		return nil, &verdict
	}
	for _, childId := range node.ChildIds {
		if childId == selected {
			return []string{selected}, nil
		}
	}
	verdict := agg.fault(node.Id, models.AnomalyUnknownScenarioChoice,
		fmt.Sprintf("selected scenario %s is not a child of indicator %s", selected, node.Code))
	return nil, &verdict
}

func (agg *aggregator) fault(id string, kind models.AggregationAnomalyKind, detail string) models.ComplianceVerdict {
	agg.anomalies = append(agg.anomalies, models.AggregationAnomaly{
		IndicatorId: id,
		Kind:        kind,
		Detail:      detail,
	})
	return models.ComplianceVerdict{
		Status: models.Indeterminate,
		Remark: detail,
	}
}

// institutionRatings counts passed vs. total BBI-associated indicators across
// the whole tree. A BBI with no associated indicators gets no rating at all:
// omitting it beats dividing by zero.
func (agg *aggregator) institutionRatings() []models.InstitutionRating {
	passedByBbi := make(map[string]int)
	totalByBbi := make(map[string]int)

	for _, node := range agg.nodes {
		if node.BbiId == nil {
			continue
		}
		verdict, ok := agg.verdicts[node.Id]
		if !ok {
			continue
		}
		totalByBbi[*node.BbiId]++
		if verdict.Status == models.Pass {
			passedByBbi[*node.BbiId]++
		}
	}

	ratings := make([]models.InstitutionRating, 0, len(totalByBbi))
	for bbiId, total := range totalByBbi {
		percentage := 100 * float64(passedByBbi[bbiId]) / float64(total)
		ratings = append(ratings, models.InstitutionRating{
			BbiId:                bbiId,
			SubIndicatorsPassed:  passedByBbi[bbiId],
			SubIndicatorsTotal:   total,
			CompliancePercentage: percentage,
			ComplianceRating:     models.RatingFromPercentage(percentage),
		})
	}

	sort.Slice(ratings, func(i, j int) bool { return ratings[i].BbiId < ratings[j].BbiId })
	return ratings
}
