package greedycost

import (
	"sort"

	"github.com/mdbrnowski/pabumeasures/election"
	"github.com/mdbrnowski/pabumeasures/pbmath"
)

// crossRatioGreater reports whether a's approvers-per-cost ratio is
// strictly greater than b's, computed by cross-multiplication so no
// floating-point division is needed.
func crossRatioGreater(a, b election.Project) bool {
	return int64(len(a.Approvers))*b.Cost > int64(len(b.Approvers))*a.Cost
}

// crossRatioLess reports whether a's ratio is strictly less than b's.
func crossRatioLess(a, b election.Project) bool {
	return crossRatioGreater(b, a)
}

// crossRatioEqual reports whether a and b have the same ratio.
func crossRatioEqual(a, b election.Project) bool {
	return int64(len(a.Approvers))*b.Cost == int64(len(b.Approvers))*a.Cost
}

// sortedByRatio returns a copy of projects sorted by approvers/cost
// descending, ties broken by tb.
func sortedByRatio(projects []election.Project, tb election.ProjectComparator) []election.Project {
	sorted := make([]election.Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if crossRatioEqual(a, b) {
			return tb.Less(a, b)
		}
		return crossRatioGreater(a, b)
	})
	return sorted
}

// Rule funds projects in descending-ratio order until the budget is
// exhausted, returning winners in selection order.
func Rule(e election.Election, tb election.ProjectComparator) []election.Project {
	remaining := e.Budget
	sorted := sortedByRatio(e.Projects, tb)
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
	for _, project := range sortedByRatio(e.Projects, tb) {
		if crossRatioLess(project, pp) {
			break
		}
		if project.Cost <= remaining {
			if project.ID == pp.ID {
				price := pp.Cost
				return &price, nil
			}
			// Price at which p would match project's ratio.
			price := pbmath.Floor(float64(project.Cost) * float64(len(pp.Approvers)) / float64(len(project.Approvers)))
			candidate := int64(price)
			if candidate > remaining {
				candidate = remaining
			}
			hypothetical := pp.WithCost(candidate)
			if crossRatioEqual(project, hypothetical) && !tb.Less(hypothetical, project) {
				candidate--
			}
			maxPrice = pbmath.OptionalMaxInt64(maxPrice, candidate)
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
	for _, project := range sortedByRatio(e.Projects, tb) {
		if project.Cost > remaining {
			continue
		}
		if project.ID == pp.ID {
			zero := 0
			return &zero, nil
		}
		if pp.Cost <= remaining && pp.Cost > remaining-project.Cost {
			needed := int(pbmath.CeilDiv(int64(len(project.Approvers))*pp.Cost, project.Cost))
			hypothetical := pp.WithApprovers(syntheticApprovers(needed))
			if crossRatioEqual(project, hypothetical) && !tb.Less(hypothetical, project) {
				needed++
			}
			if needed > e.NumVoters {
				return nil, nil
			}
			result := needed - len(pp.Approvers)
			return &result, nil
		}
		remaining -= project.Cost
		if remaining <= 0 {
			break
		}
	}
	return nil, nil
}

// PessimistAddFor coincides with OptimistAddFor for GreedyCost, for the
// same reason as the plain Greedy rule.
func PessimistAddFor(e election.Election, p int, tb election.ProjectComparator) (*int, error) {
	return OptimistAddFor(e, p, tb)
}

// SingletonAddFor is like OptimistAddFor but without the NumVoters cap.
func SingletonAddFor(e election.Election, p int, tb election.ProjectComparator) (*int, error) {
	if p < 0 || p >= len(e.Projects) {
		return nil, election.ErrTargetOutOfRange
	}
	pp := e.Projects[p]
	if pp.Cost > e.Budget {
		return nil, nil
	}

	remaining := e.Budget
	for _, project := range sortedByRatio(e.Projects, tb) {
		if project.Cost > remaining {
			continue
		}
		if project.ID == pp.ID {
			zero := 0
			return &zero, nil
		}
		if pp.Cost <= remaining && pp.Cost > remaining-project.Cost {
			needed := int(pbmath.CeilDiv(int64(len(project.Approvers))*pp.Cost, project.Cost))
			hypothetical := pp.WithApprovers(syntheticApprovers(needed))
			if crossRatioEqual(project, hypothetical) && !tb.Less(hypothetical, project) {
				needed++
			}
			result := needed - len(pp.Approvers)
			return &result, nil
		}
		remaining -= project.Cost
		if remaining <= 0 {
			break
		}
	}
	return nil, nil
}

// syntheticApprovers returns a throwaway approver slice of the given size,
// used only to build a hypothetical Project whose approver *count* feeds
// the ratio and tie-break computations.
func syntheticApprovers(n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	return a
}
