package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/models/checklist"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
)

func parentWithChildren(operator checklist.LogicOperator, childStatuses ...models.ComplianceStatus) Input {
	tree := []models.Indicator{{
		Id:              "parent",
		Code:            "1.1",
		AutoCalcMethod:  models.CalcAuto,
		LogicalOperator: operator,
		SelectionMode:   models.SelectionAll,
	}}
	leafVerdicts := make(map[string]models.ComplianceVerdict)

	for i, status := range childStatuses {
		id := string(rune('a' + i))
		tree[0].ChildIds = append(tree[0].ChildIds, id)
		tree = append(tree, models.Indicator{
			Id:             id,
			Code:           "1.1." + id,
			ParentId:       pure_utils.Ptr("parent"),
			AutoCalcMethod: models.CalcNone,
		})
		leafVerdicts[id] = models.ComplianceVerdict{Status: status}
	}

	return Input{Tree: tree, LeafVerdicts: leafVerdicts}
}

func TestAggregate_andOperator(t *testing.T) {
	tests := []struct {
		name     string
		children []models.ComplianceStatus
		expected models.ComplianceStatus
	}{
		{"all pass", []models.ComplianceStatus{models.Pass, models.Pass}, models.Pass},
		{"one fail", []models.ComplianceStatus{models.Pass, models.Fail}, models.Fail},
		{"one conditional", []models.ComplianceStatus{models.Conditional, models.Pass}, models.Conditional},
		{"conditional and fail", []models.ComplianceStatus{models.Conditional, models.Fail}, models.Fail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := Aggregate(parentWithChildren(checklist.LogicAnd, tt.children...))
			assert.Equal(t, tt.expected, output.Verdicts["parent"].Status)
			assert.Empty(t, output.Anomalies)
		})
	}
}

func TestAggregate_orOperator(t *testing.T) {
	tests := []struct {
		name     string
		children []models.ComplianceStatus
		expected models.ComplianceStatus
	}{
		{"one pass is enough", []models.ComplianceStatus{models.Fail, models.Pass}, models.Pass},
		{"all fail", []models.ComplianceStatus{models.Fail, models.Fail}, models.Fail},
		{"conditional beats fail", []models.ComplianceStatus{models.Fail, models.Conditional}, models.Conditional},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := Aggregate(parentWithChildren(checklist.LogicOr, tt.children...))
			assert.Equal(t, tt.expected, output.Verdicts["parent"].Status)
		})
	}
}

func TestAggregate_postOrderOverThreeLevels(t *testing.T) {
	tree := []models.Indicator{
		{
			Id: "root", Code: "1", AutoCalcMethod: models.CalcAuto,
			LogicalOperator: checklist.LogicAnd, ChildIds: []string{"mid_1", "mid_2"},
		},
		{
			Id: "mid_1", Code: "1.1", ParentId: pure_utils.Ptr("root"),
			AutoCalcMethod: models.CalcAuto, LogicalOperator: checklist.LogicAnd,
			ChildIds: []string{"leaf_1", "leaf_2"},
		},
		{
			Id: "mid_2", Code: "1.2", ParentId: pure_utils.Ptr("root"),
			AutoCalcMethod: models.CalcNone,
		},
		{Id: "leaf_1", Code: "1.1.1", ParentId: pure_utils.Ptr("mid_1"), AutoCalcMethod: models.CalcNone},
		{Id: "leaf_2", Code: "1.1.2", ParentId: pure_utils.Ptr("mid_1"), AutoCalcMethod: models.CalcNone},
	}
	leafVerdicts := map[string]models.ComplianceVerdict{
		"leaf_1": {Status: models.Pass},
		"leaf_2": {Status: models.Conditional},
		"mid_2":  {Status: models.Pass},
	}

	output := Aggregate(Input{Tree: tree, LeafVerdicts: leafVerdicts})

	assert.Equal(t, models.Conditional, output.Verdicts["mid_1"].Status)
	assert.Equal(t, models.Conditional, output.Verdicts["root"].Status)
	assert.Empty(t, output.Anomalies)
}

func TestAggregate_manualVerdictPassThrough(t *testing.T) {
	tree := []models.Indicator{
		{Id: "manual_1", Code: "2.1", AutoCalcMethod: models.CalcManual},
	}
	leafVerdicts := map[string]models.ComplianceVerdict{
		"manual_1": {Status: models.Conditional, Remark: "accepted by the validator"},
	}

	output := Aggregate(Input{Tree: tree, LeafVerdicts: leafVerdicts})

	assert.Equal(t, leafVerdicts["manual_1"], output.Verdicts["manual_1"])
}

func TestAggregate_oneOfSelection(t *testing.T) {
	tree := []models.Indicator{
		{
			Id: "parent", Code: "3.1", AutoCalcMethod: models.CalcAuto,
			LogicalOperator: checklist.LogicAnd, SelectionMode: models.SelectionOneOf,
			ChildIds: []string{"scenario_a", "scenario_b"},
		},
		{Id: "scenario_a", Code: "3.1.a", ParentId: pure_utils.Ptr("parent"), AutoCalcMethod: models.CalcNone},
		{Id: "scenario_b", Code: "3.1.b", ParentId: pure_utils.Ptr("parent"), AutoCalcMethod: models.CalcNone},
	}
	leafVerdicts := map[string]models.ComplianceVerdict{
		"scenario_a": {Status: models.Fail},
		"scenario_b": {Status: models.Pass},
	}

	t.Run("only the selected scenario counts", func(t *testing.T) {
		output := Aggregate(Input{
			Tree:               tree,
			LeafVerdicts:       leafVerdicts,
			ScenarioSelections: map[string]string{"parent": "scenario_b"},
		})
		assert.Equal(t, models.Pass, output.Verdicts["parent"].Status)
	})

	t.Run("missing selection is an anomaly, not a guess", func(t *testing.T) {
		output := Aggregate(Input{Tree: tree, LeafVerdicts: leafVerdicts})

		assert.Equal(t, models.Indeterminate, output.Verdicts["parent"].Status)
		require.Len(t, output.Anomalies, 1)
		assert.Equal(t, models.AnomalyMissingScenarioChoice, output.Anomalies[0].Kind)
	})

	t.Run("selection outside the children is an anomaly", func(t *testing.T) {
		output := Aggregate(Input{
			Tree:               tree,
			LeafVerdicts:       leafVerdicts,
			ScenarioSelections: map[string]string{"parent": "scenario_z"},
		})

		assert.Equal(t, models.Indeterminate, output.Verdicts["parent"].Status)
		require.Len(t, output.Anomalies, 1)
		assert.Equal(t, models.AnomalyUnknownScenarioChoice, output.Anomalies[0].Kind)
	})
}

func TestAggregate_missingLeafVerdict(t *testing.T) {
	tree := []models.Indicator{
		{
			Id: "parent", Code: "4.1", AutoCalcMethod: models.CalcAuto,
			LogicalOperator: checklist.LogicAnd, ChildIds: []string{"leaf_1"},
		},
		{Id: "leaf_1", Code: "4.1.1", ParentId: pure_utils.Ptr("parent"), AutoCalcMethod: models.CalcNone},
	}

	output := Aggregate(Input{Tree: tree, LeafVerdicts: map[string]models.ComplianceVerdict{}})

	assert.Equal(t, models.Indeterminate, output.Verdicts["leaf_1"].Status)
	assert.Equal(t, models.Indeterminate, output.Verdicts["parent"].Status)
	require.NotEmpty(t, output.Anomalies)
	assert.Equal(t, models.AnomalyMissingChildVerdict, output.Anomalies[0].Kind)
}

func TestAggregate_cycleIsReportedNotFollowed(t *testing.T) {
	tree := []models.Indicator{
		{
			Id: "a", Code: "5.1", AutoCalcMethod: models.CalcAuto,
			LogicalOperator: checklist.LogicAnd, ChildIds: []string{"b"},
		},
		{
			Id: "b", Code: "5.1.1", AutoCalcMethod: models.CalcAuto,
			LogicalOperator: checklist.LogicAnd, ChildIds: []string{"a"},
		},
	}

	output := Aggregate(Input{Tree: tree, LeafVerdicts: map[string]models.ComplianceVerdict{}})

	require.NotEmpty(t, output.Anomalies)
	assert.Equal(t, models.AnomalyCycle, output.Anomalies[0].Kind)
	assert.Equal(t, models.Indeterminate, output.Verdicts["a"].Status)
}

func bbiTree(total, passed int) Input {
	tree := make([]models.Indicator, 0, total)
	leafVerdicts := make(map[string]models.ComplianceVerdict, total)

	for i := 0; i < total; i++ {
		id := string(rune('a' + i))
		status := models.Fail
		if i < passed {
			status = models.Pass
		}
		tree = append(tree, models.Indicator{
			Id:             id,
			Code:           "6.1." + id,
			AutoCalcMethod: models.CalcNone,
			BbiId:          pure_utils.Ptr("bdrrmc"),
		})
		leafVerdicts[id] = models.ComplianceVerdict{Status: status}
	}
	return Input{Tree: tree, LeafVerdicts: leafVerdicts}
}

func TestAggregate_institutionRatingBoundaries(t *testing.T) {
	tests := []struct {
		name           string
		total, passed  int
		wantPercentage float64
		wantRating     models.ComplianceRating
	}{
		{"3 of 7 is low functional", 7, 3, 42.857142857142854, models.LowFunctional},
		{"4 of 7 is moderately functional", 7, 4, 57.142857142857146, models.ModeratelyFunctional},
		{"exactly 50 percent", 2, 1, 50, models.ModeratelyFunctional},
		{"exactly 75 percent", 4, 3, 75, models.HighlyFunctional},
		{"just under 50 percent", 100, 49, 49, models.LowFunctional},
		{"just under 75 percent", 100, 74, 74, models.ModeratelyFunctional},
		{"nothing passed", 5, 0, 0, models.NonFunctional},
		{"everything passed", 5, 5, 100, models.HighlyFunctional},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := Aggregate(bbiTree(tt.total, tt.passed))

			require.Len(t, output.Ratings, 1)
			rating := output.Ratings[0]
			assert.Equal(t, "bdrrmc", rating.BbiId)
			assert.Equal(t, tt.passed, rating.SubIndicatorsPassed)
			assert.Equal(t, tt.total, rating.SubIndicatorsTotal)
			assert.InDelta(t, tt.wantPercentage, rating.CompliancePercentage, 1e-9)
			assert.Equal(t, tt.wantRating, rating.ComplianceRating)
		})
	}
}

func TestAggregate_bbiWithoutIndicatorsGetsNoRating(t *testing.T) {
	output := Aggregate(Input{
		Tree: []models.Indicator{
			{Id: "a", Code: "7.1", AutoCalcMethod: models.CalcNone},
		},
		LeafVerdicts: map[string]models.ComplianceVerdict{
			"a": {Status: models.Pass},
		},
	})

	assert.Empty(t, output.Ratings)
}

func TestAggregate_determinism(t *testing.T) {
	input := parentWithChildren(checklist.LogicAnd, models.Pass, models.Conditional, models.Pass)

	first := Aggregate(input)
	second := Aggregate(input)

	assert.Equal(t, first, second)
}
