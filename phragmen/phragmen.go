package phragmen

import (
	"math"

	"github.com/mdbrnowski/pabumeasures/election"
	"github.com/mdbrnowski/pabumeasures/greedy"
	"github.com/mdbrnowski/pabumeasures/pbmath"
)

// Rule runs sequential Phragmen over e, returning the funded projects in
// selection order. A canceled Ctx (checked once per round) stops the loop
// early, the same as the budget running out, and returns whatever rounds
// already completed.
func Rule(e election.Election, tb election.ProjectComparator, opts ...Option) []election.Project {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	remaining := e.Budget
	load := make([]float64, e.NumVoters)
	pool := make([]election.Project, len(e.Projects))
	copy(pool, e.Projects)

	winners := make([]election.Project, 0, len(pool))
	for len(pool) > 0 {
		select {
		case <-o.Ctx.Done():
			return winners
		default:
		}

		minMaxLoad := math.Inf(1)
		var roundWinners []election.Project
		for _, project := range pool {
			maxLoad := maxLoadFor(project, load)
			if pbmath.Less(maxLoad, minMaxLoad) {
				roundWinners = roundWinners[:0]
				minMaxLoad = maxLoad
			}
			if pbmath.Equal(maxLoad, minMaxLoad) {
				roundWinners = append(roundWinners, project)
			}
		}

		anyOverBudget := false
		for _, w := range roundWinners {
			if w.Cost > remaining {
				anyOverBudget = true
				break
			}
		}
		if anyOverBudget {
			break
		}

		winner := tb.Min(roundWinners)
		for _, approver := range winner.Approvers {
			load[approver] = minMaxLoad
		}
		winners = append(winners, winner)
		o.OnRoundSelected(winner)
		remaining -= winner.Cost
		pool = removeByID(pool, winner.ID)
	}
	return winners
}

// maxLoadFor returns the load every approver of project would reach if it
// were funded right now, splitting its cost evenly among them on top of
// their current load. A project with no approvers can never be funded.
func maxLoadFor(project election.Project, load []float64) float64 {
	if len(project.Approvers) == 0 {
		return math.Inf(1)
	}
	total := float64(project.Cost)
	for _, approver := range project.Approvers {
		total += load[approver]
	}
	return total / float64(len(project.Approvers))
}

func removeByID(projects []election.Project, id int) []election.Project {
	out := make([]election.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// CostReductionFor returns the maximum integer price at which target p
// would have been selected, or nil if no round ever makes p competitive.
//
// It mirrors Rule's own round loop: at every round, before applying that
// round's actual winner, it asks what price would let p match the round's
// min-load, and folds the running maximum across rounds.
func CostReductionFor(e election.Election, p int, tb election.ProjectComparator) (*int64, error) {
	if p < 0 || p >= len(e.Projects) {
		return nil, election.ErrTargetOutOfRange
	}
	pp := e.Projects[p]
	if pp.Cost > e.Budget {
		return nil, nil
	}

	remaining := e.Budget
	load := make([]float64, e.NumVoters)
	pool := make([]election.Project, len(e.Projects))
	copy(pool, e.Projects)

	var maxPrice *int64
	for len(pool) > 0 {
		minMaxLoad := math.Inf(1)
		var roundWinners []election.Project
		for _, project := range pool {
			ml := maxLoadFor(project, load)
			if pbmath.Less(ml, minMaxLoad) {
				roundWinners = roundWinners[:0]
				minMaxLoad = ml
			}
			if pbmath.Equal(ml, minMaxLoad) {
				roundWinners = append(roundWinners, project)
			}
		}

		anyOverBudget := false
		for _, w := range roundWinners {
			if w.Cost > remaining {
				anyOverBudget = true
				break
			}
		}
		if anyOverBudget {
			break
		}

		winner := tb.Min(roundWinners)
		if winner.ID == pp.ID {
			price := pp.Cost
			return &price, nil
		}

		if containsID(pool, pp.ID) {
			if candidate := candidatePriceFor(pp, load, minMaxLoad, remaining, winner, roundWinners, e, tb); candidate != nil {
				maxPrice = pbmath.OptionalMaxInt64(maxPrice, *candidate)
			}
		}

		for _, approver := range winner.Approvers {
			load[approver] = minMaxLoad
		}
		remaining -= winner.Cost
		pool = removeByID(pool, winner.ID)
	}
	return maxPrice, nil
}

// candidatePriceFor computes the round's contribution to p's cost_reduction
// running maximum. When p has no approvers of its own, maxLoadFor always
// scores it at +infinity, so it falls back to asking what Greedy over this
// round's tied winners (the only projects competitive enough to matter)
// would have paid p.
func candidatePriceFor(pp election.Project, load []float64, minMaxLoad float64, remaining int64, winner election.Project, roundWinners []election.Project, e election.Election, tb election.ProjectComparator) *int64 {
	if len(pp.Approvers) == 0 {
		if len(winner.Approvers) != 0 {
			return nil
		}
		sub := election.Election{Budget: remaining, NumVoters: e.NumVoters, Projects: roundWinners}
		idx := indexOfID(sub.Projects, pp.ID)
		if idx < 0 {
			return nil
		}
		price, err := greedy.CostReductionFor(sub, idx, tb)
		if err != nil {
			return nil
		}
		return price
	}

	sumLoad := 0.0
	for _, v := range pp.Approvers {
		sumLoad += load[v]
	}
	raw := minMaxLoad*float64(len(pp.Approvers)) - sumLoad
	price := int64(pbmath.Floor(raw))
	if price < 0 {
		price = 0
	}
	priceCap := pp.Cost
	if remaining < priceCap {
		priceCap = remaining
	}
	if price > priceCap {
		price = priceCap
	}

	hypothetical := pp.WithCost(price)
	// A tie resolves in p's favor only when it strictly precedes winner
	// under tb; an exact tie on every criterion counts against p here,
	// whichever of the two comes first in Rule's iteration order, so the
	// result may be one unit low but is never overstated.
	if pbmath.Equal(maxLoadFor(hypothetical, load), minMaxLoad) && !tb.Less(hypothetical, winner) {
		price--
	}
	if price < 0 {
		return nil
	}
	return &price
}

func containsID(projects []election.Project, id int) bool {
	return indexOfID(projects, id) >= 0
}

func indexOfID(projects []election.Project, id int) int {
	for i, p := range projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}
