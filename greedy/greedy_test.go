package greedy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdbrnowski/pabumeasures/election"
	"github.com/mdbrnowski/pabumeasures/greedy"
)

// s1Election is the worked example from the specification: a two-way tie
// by votes broken by ascending cost.
func s1Election() election.Election {
	return election.Election{
		Budget:    5,
		NumVoters: 3,
		Projects: []election.Project{
			{ID: 0, Cost: 3, Name: "a", Approvers: []int{0, 1}},
			{ID: 1, Cost: 2, Name: "b", Approvers: []int{0, 1}},
			{ID: 2, Cost: 4, Name: "c", Approvers: []int{2}},
		},
	}
}

func TestRule_S1(t *testing.T) {
	e := s1Election()
	winners := greedy.Rule(e, election.ByCostAscThenVotesDesc)
	require.Len(t, winners, 2)
	assert.Equal(t, 1, winners[0].ID)
	assert.Equal(t, 0, winners[1].ID)
}

func TestCostReductionFor_S5(t *testing.T) {
	e := s1Election()
	got, err := greedy.CostReductionFor(e, 2, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(0), *got)
}

func TestCostReductionFor_WinnerReturnsOwnCost(t *testing.T) {
	e := s1Election()
	got, err := greedy.CostReductionFor(e, 1, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), *got, "a current winner's cost_reduction is its own cost")
}

func TestCostReductionFor_TargetOutOfRange(t *testing.T) {
	e := s1Election()
	_, err := greedy.CostReductionFor(e, 9, election.ByCostAscThenVotesDesc)
	assert.ErrorIs(t, err, election.ErrTargetOutOfRange)
}

func TestOptimistAddFor_S6(t *testing.T) {
	e := election.Election{
		Budget:    4,
		NumVoters: 4,
		Projects: []election.Project{
			{ID: 0, Cost: 3, Name: "a", Approvers: []int{0, 1, 2}},
			{ID: 1, Cost: 3, Name: "b", Approvers: []int{3}},
		},
	}
	got, err := greedy.OptimistAddFor(e, 1, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, *got)
}

func TestOptimistAddFor_ZeroForWinner(t *testing.T) {
	e := s1Election()
	got, err := greedy.OptimistAddFor(e, 1, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, *got)
}

func TestOptimistAddFor_AbsentWhenVoterCapExceeded(t *testing.T) {
	// Target needs more approvers than voters exist to beat the competitor.
	e := election.Election{
		Budget:    10,
		NumVoters: 5,
		Projects: []election.Project{
			{ID: 0, Cost: 4, Name: "a", Approvers: []int{0, 1, 2, 3, 4}},
			{ID: 1, Cost: 7, Name: "b", Approvers: []int{}},
		},
	}
	got, err := greedy.OptimistAddFor(e, 1, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPessimistAddEqualsOptimistAdd(t *testing.T) {
	e := s1Election()
	opt, err := greedy.OptimistAddFor(e, 2, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	pes, err := greedy.PessimistAddFor(e, 2, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	assert.Equal(t, opt, pes)
}

func TestSingletonAddGreaterOrEqualOptimistAdd(t *testing.T) {
	e := s1Election()
	opt, err := greedy.OptimistAddFor(e, 2, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	sing, err := greedy.SingletonAddFor(e, 2, election.ByCostAscThenVotesDesc)
	require.NoError(t, err)
	if opt != nil && sing != nil {
		assert.GreaterOrEqual(t, *sing, *opt)
	}
}

func TestRule_BudgetNeverExceeded(t *testing.T) {
	e := s1Election()
	winners := greedy.Rule(e, election.ByCostAscThenVotesDesc)
	var total int64
	for _, w := range winners {
		total += w.Cost
	}
	assert.LessOrEqual(t, total, e.Budget)
}

func TestRule_Deterministic(t *testing.T) {
	e := s1Election()
	a := greedy.Rule(e, election.ByCostAscThenVotesDesc)
	b := greedy.Rule(e, election.ByCostAscThenVotesDesc)
	assert.Equal(t, a, b)
}
