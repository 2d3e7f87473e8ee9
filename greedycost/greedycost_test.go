package greedycost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdbrnowski/pabumeasures/election"
	"github.com/mdbrnowski/pabumeasures/greedycost"
)

// s2Election is the worked example from the specification: a two-project
// election where the dearer but more-approved project wins on ratio
// (3/5 against 2/4).
func s2Election() election.Election {
	return election.Election{
		Budget:    10,
		NumVoters: 3,
		Projects: []election.Project{
			{ID: 0, Cost: 5, Name: "a", Approvers: []int{0, 1, 2}},
			{ID: 1, Cost: 4, Name: "b", Approvers: []int{0, 1}},
		},
	}
}

func TestRule_S2(t *testing.T) {
	e := s2Election()
	winners := greedycost.Rule(e, election.ByCostAscThenVotesDesc)
	require.Len(t, winners, 2)
	assert.Equal(t, 0, winners[0].ID)
	assert.Equal(t, 1, winners[1].ID)
}

func TestCostReductionFor_WinnerReturnsOwnCost(t *testing.T) {
	e := s2Election()
	got, err := greedycost.CostReductionFor(e, 0, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(5), *got)
}

func TestCostReductionFor_TargetOutOfRange(t *testing.T) {
	e := s2Election()
	_, err := greedycost.CostReductionFor(e, 9, election.ByCostAscThenVotesDesc)
	assert.ErrorIs(t, err, election.ErrTargetOutOfRange)
}

func TestCostReductionFor_LowerRankedProjectWithinBudgetReturnsOwnCost(t *testing.T) {
	// Both projects fit the budget simultaneously, so the lower-ranked
	// project still wins at its own price once included in the walk.
	e := s2Election()
	got, err := greedycost.CostReductionFor(e, 1, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(4), *got)
}

func TestOptimistAddFor_ZeroForWinner(t *testing.T) {
	e := s2Election()
	got, err := greedycost.OptimistAddFor(e, 0, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, *got)
}

func TestOptimistAddFor_AbsentWhenVoterCapExceeded(t *testing.T) {
	e := election.Election{
		Budget:    10,
		NumVoters: 5,
		Projects: []election.Project{
			{ID: 0, Cost: 4, Name: "a", Approvers: []int{0, 1, 2, 3, 4}},
			{ID: 1, Cost: 7, Name: "b", Approvers: []int{}},
		},
	}
	got, err := greedycost.OptimistAddFor(e, 1, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPessimistAddEqualsOptimistAdd(t *testing.T) {
	e := s2Election()
	opt, err := greedycost.OptimistAddFor(e, 1, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	pes, err := greedycost.PessimistAddFor(e, 1, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	assert.Equal(t, opt, pes)
}

func TestSingletonAddGreaterOrEqualOptimistAdd(t *testing.T) {
	e := election.Election{
		Budget:    4,
		NumVoters: 1,
		Projects: []election.Project{
			{ID: 0, Cost: 4, Name: "a", Approvers: []int{0}},
			{ID: 1, Cost: 4, Name: "b", Approvers: []int{}},
		},
	}
	opt, err := greedycost.OptimistAddFor(e, 1, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	sing, err := greedycost.SingletonAddFor(e, 1, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	if opt != nil && sing != nil {
		assert.GreaterOrEqual(t, *sing, *opt)
	}
}

func TestRule_BudgetNeverExceeded(t *testing.T) {
	e := s2Election()
	winners := greedycost.Rule(e, election.ByCostAscThenVotesDesc)
	var total int64
	for _, w := range winners {
		total += w.Cost
	}
	assert.LessOrEqual(t, total, e.Budget)
}

func TestRule_Deterministic(t *testing.T) {
	e := s2Election()
	a := greedycost.Rule(e, election.ByCostAscThenVotesDesc)
	b := greedycost.Rule(e, election.ByCostAscThenVotesDesc)
	assert.Equal(t, a, b)
}
