package phragmen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdbrnowski/pabumeasures/election"
	"github.com/mdbrnowski/pabumeasures/phragmen"
)

// s3Election is the worked example from the specification: two
// singleton-approved projects and one jointly-approved project.
func s3Election() election.Election {
	return election.Election{
		Budget:    6,
		NumVoters: 2,
		Projects: []election.Project{
			{ID: 0, Cost: 3, Name: "a", Approvers: []int{0}},
			{ID: 1, Cost: 3, Name: "b", Approvers: []int{1}},
			{ID: 2, Cost: 3, Name: "c", Approvers: []int{0, 1}},
		},
	}
}

func TestRule_S3(t *testing.T) {
	e := s3Election()
	winners := phragmen.Rule(e, election.ByCostAscThenVotesDesc)
	require.Len(t, winners, 2)
	assert.Equal(t, 2, winners[0].ID)
	assert.Equal(t, 0, winners[1].ID)
}

func TestRule_BudgetNeverExceeded(t *testing.T) {
	e := s3Election()
	winners := phragmen.Rule(e, election.ByCostAscThenVotesDesc)
	var total int64
	for _, w := range winners {
		total += w.Cost
	}
	assert.LessOrEqual(t, total, e.Budget)
}

func TestRule_Deterministic(t *testing.T) {
	e := s3Election()
	a := phragmen.Rule(e, election.ByCostAscThenVotesDesc)
	b := phragmen.Rule(e, election.ByCostAscThenVotesDesc)
	assert.Equal(t, a, b)
}

func TestRule_OnRoundSelectedSeesEveryWinnerInOrder(t *testing.T) {
	e := s3Election()
	var seen []int
	winners := phragmen.Rule(e, election.ByCostAscThenVotesDesc,
		phragmen.WithOnRoundSelected(func(p election.Project) { seen = append(seen, p.ID) }))

	ids := make([]int, len(winners))
	for i, w := range winners {
		ids[i] = w.ID
	}
	assert.Equal(t, ids, seen)
}

func TestRule_CanceledContextStopsEarly(t *testing.T) {
	e := s3Election()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	winners := phragmen.Rule(e, election.ByCostAscThenVotesDesc, phragmen.WithContext(ctx))
	assert.Empty(t, winners)
}

func TestCostReductionFor_WinnerReturnsOwnCost(t *testing.T) {
	e := s3Election()
	got, err := phragmen.CostReductionFor(e, 2, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(3), *got)
}

func TestCostReductionFor_TargetOutOfRange(t *testing.T) {
	e := s3Election()
	_, err := phragmen.CostReductionFor(e, 9, election.ByCostAscThenVotesDesc)
	assert.ErrorIs(t, err, election.ErrTargetOutOfRange)
}

func TestCostReductionFor_InfeasibleReturnsAbsent(t *testing.T) {
	e := election.Election{
		Budget:    2,
		NumVoters: 1,
		Projects: []election.Project{
			{ID: 0, Cost: 5, Name: "a", Approvers: []int{0}},
		},
	}
	got, err := phragmen.CostReductionFor(e, 0, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCostReductionFor_LosingProjectHasNonNegativeBound(t *testing.T) {
	e := election.Election{
		Budget:    3,
		NumVoters: 2,
		Projects: []election.Project{
			{ID: 0, Cost: 3, Name: "a", Approvers: []int{0}},
			{ID: 1, Cost: 3, Name: "b", Approvers: []int{1}},
		},
	}
	got, err := phragmen.CostReductionFor(e, 1, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	if got != nil {
		assert.GreaterOrEqual(t, *got, int64(0))
		assert.LessOrEqual(t, *got, e.Projects[1].Cost)
	}
}
