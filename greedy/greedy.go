package greedy

import (
	"sort"

	"github.com/mdbrnowski/pabumeasures/election"
	"github.com/mdbrnowski/pabumeasures/pbmath"
)

// sortedByVotes returns a copy of projects sorted by approver count
// descending, ties broken by tb. The comparator composes the two orders
// exactly as the rule's own selection order does, so cost_reduction and
// optimist_add can walk the same sequence the rule walks.
func sortedByVotes(projects []election.Project, tb election.ProjectComparator) []election.Project {
	sorted := make([]election.Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if len(a.Approvers) == len(b.Approvers) {
			return tb.Less(a, b)
		}
		return len(a.Approvers) > len(b.Approvers)
	})
	return sorted
}

// Rule funds projects in descending-approval order until the budget is
// exhausted, returning winners in selection order.
func Rule(e election.Election, tb election.ProjectComparator) []election.Project {
	remaining := e.Budget
	sorted := sortedByVotes(e.Projects, tb)
	winners := make([]election.Project, 0, len(sorted))
	for _, project := range sorted {
		if project.Cost <= remaining {
			winners = append(winners, project)
			remaining -= project.Cost
		}
		if remaining <= 0 {
			break
		}
	}
	return winners
}

// CostReductionFor returns the maximum integer price at which target p
// would have been selected, or nil if no price improves its outcome.
func CostReductionFor(e election.Election, p int, tb election.ProjectComparator) (*int64, error) {
	if p < 0 || p >= len(e.Projects) {
		return nil, election.ErrTargetOutOfRange
	}
	pp := e.Projects[p]
	if pp.Cost > e.Budget {
		return nil, nil
	}

	remaining := e.Budget
	var maxPrice *int64
	for _, project := range sortedByVotes(e.Projects, tb) {
		if len(project.Approvers) < len(pp.Approvers) {
			break
		}
		if project.Cost <= remaining {
			if project.ID == pp.ID {
				price := pp.Cost
				return &price, nil
			}
			if len(project.Approvers) == len(pp.Approvers) &&
				tb.Less(pp.WithCost(project.Cost-1), project) {
				// p loses this tie; at price project.Cost-1 it would win it.
				maxPrice = pbmath.OptionalMaxInt64(maxPrice, project.Cost-1)
			}
			remaining -= project.Cost
		} else if project.ID == pp.ID {
			maxPrice = pbmath.OptionalMaxInt64(maxPrice, remaining)
		}
	}
	return maxPrice, nil
}

// OptimistAddFor returns the minimum number of additional approvers that
// would make target p selected, or nil if no number of added approvers
// (bounded by NumVoters) suffices.
func OptimistAddFor(e election.Election, p int, tb election.ProjectComparator) (*int, error) {
	if p < 0 || p >= len(e.Projects) {
		return nil, election.ErrTargetOutOfRange
	}
	pp := e.Projects[p]
	if pp.Cost > e.Budget {
		return nil, nil
	}

	remaining := e.Budget
	for _, project := range sortedByVotes(e.Projects, tb) {
		if project.Cost > remaining {
			continue
		}
		if project.ID == pp.ID {
			zero := 0
			return &zero, nil
		}
		if pp.Cost > remaining-project.Cost {
			// Last moment pp could still have been added. Equal approver
			// counts suffice only when tb strictly prefers pp; an exact tie
			// on every criterion counts against pp.
			needed := len(project.Approvers)
			hypothetical := pp.WithApprovers(syntheticApprovers(needed))
			if !tb.Less(hypothetical, project) {
				needed++
			}
			if needed > e.NumVoters {
				return nil, nil
			}
			result := needed - len(pp.Approvers)
			return &result, nil
		}
		remaining -= project.Cost
	}
	return nil, nil
}

// PessimistAddFor coincides with OptimistAddFor for Greedy: the rule is
// deterministic in approver count alone, so there is no adversarial case
// distinct from the optimistic one.
func PessimistAddFor(e election.Election, p int, tb election.ProjectComparator) (*int, error) {
	return OptimistAddFor(e, p, tb)
}

// SingletonAddFor is like OptimistAddFor but without the NumVoters cap:
// voters may be added to the electorate itself.
func SingletonAddFor(e election.Election, p int, tb election.ProjectComparator) (*int, error) {
	if p < 0 || p >= len(e.Projects) {
		return nil, election.ErrTargetOutOfRange
	}
	pp := e.Projects[p]
	if pp.Cost > e.Budget {
		return nil, nil
	}

	remaining := e.Budget
	for _, project := range sortedByVotes(e.Projects, tb) {
		if project.Cost > remaining {
			continue
		}
		if project.ID == pp.ID {
			zero := 0
			return &zero, nil
		}
		if pp.Cost > remaining-project.Cost {
			needed := len(project.Approvers)
			hypothetical := pp.WithApprovers(syntheticApprovers(needed))
			if !tb.Less(hypothetical, project) {
				needed++
			}
			result := needed - len(pp.Approvers)
			return &result, nil
		}
		remaining -= project.Cost
	}
	return nil, nil
}

// syntheticApprovers returns a throwaway approver slice of the given size,
// used only to build a hypothetical Project whose approver *count* (not
// identity) feeds the tie-break comparator.
func syntheticApprovers(n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	return a
}
