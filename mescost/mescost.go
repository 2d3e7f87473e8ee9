package mescost

import (
	"container/heap"
	"math"
	"sort"

	"github.com/mdbrnowski/pabumeasures/election"
	"github.com/mdbrnowski/pabumeasures/pbmath"
)

// candidate is an entry in the round priority queue: a project index paired
// with its last-computed max-payment-by-cost.
type candidate struct {
	index         int
	paymentByCost float64
}

// candidatePQ orders candidates by ascending cached payment-by-cost ratio.
type candidatePQ []*candidate

func (pq candidatePQ) Len() int            { return len(pq) }
func (pq candidatePQ) Less(i, j int) bool  { return pq[i].paymentByCost < pq[j].paymentByCost }
func (pq candidatePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

type runner struct {
	projects []election.Project
	tb       election.ProjectComparator
	budget   []float64
	pq       candidatePQ
}

func newRunner(e election.Election, tb election.ProjectComparator) *runner {
	r := &runner{
		projects: e.Projects,
		tb:       tb,
		budget:   make([]float64, e.NumVoters),
		pq:       make(candidatePQ, 0, len(e.Projects)),
	}
	share := float64(e.Budget) / float64(e.NumVoters)
	for v := range r.budget {
		r.budget[v] = share
	}
	heap.Init(&r.pq)
	for i := range r.projects {
		heap.Push(&r.pq, &candidate{index: i, paymentByCost: 0})
	}
	return r
}

// paymentByCostFor computes project's max-payment, and that max-payment
// divided by its own cost, given the current budget state. It returns
// ok=false if the project's approvers can't collectively afford it.
func paymentByCostFor(cost int64, approvers []int, budget []float64) (ratio float64, ok bool) {
	if len(approvers) == 0 || cost == 0 {
		return 0, false
	}
	moneyBehind := 0.0
	for _, v := range approvers {
		moneyBehind += budget[v]
	}
	if pbmath.Less(moneyBehind, float64(cost)) {
		return 0, false
	}

	sorted := append([]int(nil), approvers...)
	sort.Slice(sorted, func(i, j int) bool { return budget[sorted[i]] < budget[sorted[j]] })

	paidSoFar := 0.0
	denom := float64(len(sorted))
	for _, v := range sorted {
		payment := (float64(cost) - paidSoFar) / denom
		if pbmath.Greater(payment, budget[v]) {
			paidSoFar += budget[v]
			denom--
			continue
		}
		return payment / float64(cost), true
	}
	return 0, false
}

func (r *runner) computeRound() (index int, minRatio float64, minMaxPayment float64, ok bool) {
	minRatio = math.Inf(1)
	best := -1
	reinsert := make([]*candidate, 0, r.pq.Len())

	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*candidate)
		if pbmath.Greater(cur.paymentByCost, minRatio) {
			reinsert = append(reinsert, cur)
			break
		}

		project := r.projects[cur.index]
		ratio, affordable := paymentByCostFor(project.Cost, project.Approvers, r.budget)
		if !affordable {
			continue
		}

		cur.paymentByCost = ratio
		if pbmath.Less(ratio, minRatio) ||
			(pbmath.Equal(ratio, minRatio) && best >= 0 && r.tb.Less(project, r.projects[best])) {
			if best >= 0 {
				reinsert = append(reinsert, &candidate{index: best, paymentByCost: minRatio})
			}
			minRatio = ratio
			best = cur.index
		} else {
			reinsert = append(reinsert, cur)
		}
	}

	for _, c := range reinsert {
		heap.Push(&r.pq, c)
	}
	if best < 0 {
		return 0, 0, 0, false
	}
	return best, minRatio, minRatio * float64(r.projects[best].Cost), true
}

func (r *runner) applyWinner(index int, minMaxPayment float64) {
	for _, v := range r.projects[index].Approvers {
		r.budget[v] = math.Max(0, r.budget[v]-minMaxPayment)
	}
}

// Rule runs the Method of Equal Shares (cost variant) over e, returning the
// funded projects in round order. A canceled Ctx (checked once per round)
// stops the loop early, the same as running out of affordable projects,
// and returns whatever rounds already completed.
func Rule(e election.Election, tb election.ProjectComparator, opts ...Option) []election.Project {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := newRunner(e, tb)
	winners := make([]election.Project, 0, len(e.Projects))
	for {
		select {
		case <-o.Ctx.Done():
			return winners
		default:
		}

		idx, _, mmp, ok := r.computeRound()
		if !ok {
			break
		}
		winner := r.projects[idx]
		winners = append(winners, winner)
		o.OnRoundSelected(winner)
		r.applyWinner(idx, mmp)
	}
	return winners
}

// CostReductionFor returns the maximum integer price at which target p
// would have been selected, or nil if no price in [0, cost(p)] suffices.
func CostReductionFor(e election.Election, p int, tb election.ProjectComparator) (*int64, error) {
	if p < 0 || p >= len(e.Projects) {
		return nil, election.ErrTargetOutOfRange
	}
	pp := e.Projects[p]
	if pp.Cost > e.Budget {
		return nil, nil
	}
	if wins(Rule(e, tb), pp.ID) {
		price := pp.Cost
		return &price, nil
	}

	lo, hi := int64(0), pp.Cost
	var best *int64
	for lo <= hi {
		mid := lo + (hi-lo)/2
		hyp := withProjectCost(e, p, mid)
		if wins(Rule(hyp, tb), pp.ID) {
			v := mid
			best = &v
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best, nil
}

func wins(winners []election.Project, id int) bool {
	for _, w := range winners {
		if w.ID == id {
			return true
		}
	}
	return false
}

func withProjectCost(e election.Election, p int, cost int64) election.Election {
	projects := make([]election.Project, len(e.Projects))
	copy(projects, e.Projects)
	projects[p] = projects[p].WithCost(cost)
	return election.Election{Budget: e.Budget, NumVoters: e.NumVoters, Projects: projects}
}
