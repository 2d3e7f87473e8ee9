package mesapr

import (
	"container/heap"
	"math"
	"sort"

	"github.com/mdbrnowski/pabumeasures/election"
	"github.com/mdbrnowski/pabumeasures/pbmath"
)

// candidate is an entry in the round priority queue: a project index paired
// with its last-computed max-payment.
type candidate struct {
	index      int
	maxPayment float64
}

// candidatePQ orders candidates by ascending cached max-payment.
type candidatePQ []*candidate

func (pq candidatePQ) Len() int            { return len(pq) }
func (pq candidatePQ) Less(i, j int) bool  { return pq[i].maxPayment < pq[j].maxPayment }
func (pq candidatePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// runner holds the per-call state of the MES-Approval round loop: each
// voter's remaining budget share and the candidate priority queue.
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
		heap.Push(&r.pq, &candidate{index: i, maxPayment: 0})
	}
	return r
}

// maxPaymentFor computes project's max-payment given the current budget
// state, mirroring the per-project scan described in the specification: it
// returns (payment, true) if the project is affordable this round, or
// (_, false) if its approvers' combined budget falls short of its cost.
func maxPaymentFor(cost int64, approvers []int, budget []float64) (float64, bool) {
	if len(approvers) == 0 {
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
		return payment, true
	}
	// Every approver was fully tapped without ever reaching a uniform
	// payment; the combined budget check above guarantees this can't
	// happen, but guard against float drift by reporting unaffordable.
	return 0, false
}

// computeRound pops and re-validates candidates from the queue until it
// finds this round's winner, reinserting everything else. It returns the
// winning project's index and its max-payment, or ok=false if no project
// is affordable.
func (r *runner) computeRound() (index int, minMaxPayment float64, ok bool) {
	minMaxPayment = math.Inf(1)
	best := -1
	reinsert := make([]*candidate, 0, r.pq.Len())

	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*candidate)
		if pbmath.Greater(cur.maxPayment, minMaxPayment) {
			reinsert = append(reinsert, cur)
			break
		}

		project := r.projects[cur.index]
		payment, affordable := maxPaymentFor(project.Cost, project.Approvers, r.budget)
		if !affordable {
			continue // dropped: a voter's budget only shrinks, never revives this candidate
		}

		cur.maxPayment = payment
		if pbmath.Less(payment, minMaxPayment) ||
			(pbmath.Equal(payment, minMaxPayment) && best >= 0 && r.tb.Less(project, r.projects[best])) {
			if best >= 0 {
				reinsert = append(reinsert, &candidate{index: best, maxPayment: minMaxPayment})
			}
			minMaxPayment = payment
			best = cur.index
		} else {
			reinsert = append(reinsert, cur)
		}
	}

	for _, c := range reinsert {
		heap.Push(&r.pq, c)
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, minMaxPayment, true
}

// applyWinner deducts minMaxPayment from every approver of the winning
// project, floored at zero.
func (r *runner) applyWinner(index int, minMaxPayment float64) {
	for _, v := range r.projects[index].Approvers {
		r.budget[v] = math.Max(0, r.budget[v]-minMaxPayment)
	}
}

// Rule runs the Method of Equal Shares (approval variant) over e, returning
// the funded projects in round order. A canceled Ctx (checked once per
// round) stops the loop early, the same as running out of affordable
// projects, and returns whatever rounds already completed.
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

		idx, mmp, ok := r.computeRound()
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
// would have been selected, or nil if no round ever makes p competitive.
func CostReductionFor(e election.Election, p int, tb election.ProjectComparator) (*int64, error) {
	if p < 0 || p >= len(e.Projects) {
		return nil, election.ErrTargetOutOfRange
	}
	pp := e.Projects[p]
	if pp.Cost > e.Budget {
		return nil, nil
	}
	if len(pp.Approvers) == 0 {
		return nil, nil
	}

	r := newRunner(e, tb)
	var maxPrice *int64
	for {
		idx, mmp, ok := r.computeRound()
		if !ok {
			price := int64(pbmath.Floor(sumBudget(pp.Approvers, r.budget)))
			maxPrice = pbmath.OptionalMaxInt64(maxPrice, price)
			break
		}
		if r.projects[idx].ID == pp.ID {
			price := pp.Cost
			return &price, nil
		}

		winner := r.projects[idx]
		price := costReductionRoundPrice(pp, r.budget, mmp, winner, tb)
		maxPrice = pbmath.OptionalMaxInt64(maxPrice, price)

		r.applyWinner(idx, mmp)
	}
	return maxPrice, nil
}

// costReductionRoundPrice computes the price pp could have been sold at in
// a round whose min-max-payment is minMaxPayment, by walking pp's own
// approvers from poorest to richest and summing what each can uniformly
// contribute.
func costReductionRoundPrice(pp election.Project, budget []float64, minMaxPayment float64, winner election.Project, tb election.ProjectComparator) int64 {
	sorted := append([]int(nil), pp.Approvers...)
	sort.Slice(sorted, func(i, j int) bool { return budget[sorted[i]] < budget[sorted[j]] })

	paidSoFar := 0.0
	fullParticipators := float64(len(sorted))
	for _, v := range sorted {
		if pbmath.Greater(minMaxPayment, budget[v]) {
			paidSoFar += budget[v]
			fullParticipators--
			continue
		}
		paidSoFar += fullParticipators * minMaxPayment
		break
	}

	flooredPrice := pbmath.Floor(paidSoFar)
	hypothetical := pp.WithCost(int64(flooredPrice))
	if pbmath.Equal(flooredPrice, paidSoFar) && tb.Less(winner, hypothetical) {
		flooredPrice--
	}
	return int64(flooredPrice)
}

func sumBudget(approvers []int, budget []float64) float64 {
	total := 0.0
	for _, v := range approvers {
		total += budget[v]
	}
	return total
}

// OptimistAddFor returns the minimum number of additional approvers
// (chosen from voters not already approving p, without changing the size
// of the electorate) that would make target p selected, or nil if no
// number up to NumVoters-|approvers(p)| suffices.
func OptimistAddFor(e election.Election, p int, tb election.ProjectComparator) (*int, error) {
	if p < 0 || p >= len(e.Projects) {
		return nil, election.ErrTargetOutOfRange
	}
	pp := e.Projects[p]
	if pp.Cost > e.Budget {
		return nil, nil
	}
	voterCap := e.NumVoters - len(pp.Approvers)
	if voterCap < 0 {
		return nil, nil
	}

	r := newRunner(e, tb)
	var best *int
	for {
		idx, mmp, ok := r.computeRound()
		if !ok {
			if k := minApproversToAfford(pp, r.budget, voterCap); k != nil {
				best = pbmath.OptionalMinInt(best, *k)
			}
			break
		}
		winner := r.projects[idx]
		if winner.ID == pp.ID {
			zero := 0
			return &zero, nil
		}

		if k := minApproversToBeat(pp, r.budget, mmp, winner, tb, voterCap); k != nil {
			best = pbmath.OptionalMinInt(best, *k)
		}

		r.applyWinner(idx, mmp)
	}
	return best, nil
}

// SingletonAddFor iterates: run the rule; if p is selected, return the
// number of synthetic voters added so far; otherwise grow the electorate
// by one voter who only approves p and retry. The starting voter count is
// seeded to a provable lower bound so the search doesn't restart from
// zero on every call.
func SingletonAddFor(e election.Election, p int, tb election.ProjectComparator) (*int, error) {
	if p < 0 || p >= len(e.Projects) {
		return nil, election.ErrTargetOutOfRange
	}
	pp := e.Projects[p]
	if wins(Rule(e, tb), pp.ID) {
		zero := 0
		return &zero, nil
	}
	if pp.Cost >= e.Budget {
		return nil, nil
	}
	pp.Approvers = append([]int(nil), pp.Approvers...)

	projects := append([]election.Project(nil), e.Projects...)
	numVoters := e.NumVoters
	added := 0

	seed := int(pbmath.CeilDiv(int64(numVoters-len(pp.Approvers))*pp.Cost, e.Budget-pp.Cost))
	for added < seed {
		pp.Approvers = append(pp.Approvers, numVoters)
		numVoters++
		added++
	}
	projects[p] = pp

	for {
		sim := election.Election{Budget: e.Budget, NumVoters: numVoters, Projects: projects}
		if wins(Rule(sim, tb), pp.ID) {
			result := added
			return &result, nil
		}
		pp.Approvers = append(pp.Approvers, numVoters)
		projects[p] = pp
		numVoters++
		added++
	}
}

func wins(winners []election.Project, id int) bool {
	for _, w := range winners {
		if w.ID == id {
			return true
		}
	}
	return false
}

// minApproversToBeat finds the smallest number of richest-available
// non-approver voters that, added to pp, would make its max-payment beat
// winner's, bounded by voterCap. It returns nil if voterCap additions don't suffice.
func minApproversToBeat(pp election.Project, budget []float64, minMaxPayment float64, winner election.Project, tb election.ProjectComparator, voterCap int) *int {
	pool := richNonApprovers(pp.Approvers, budget)
	lo, hi := 0, voterCap
	found := -1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if beatsWinner(pp, budget, pool, mid, minMaxPayment, winner, tb) {
			found = mid
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	if found < 0 {
		return nil
	}
	return &found
}

func beatsWinner(pp election.Project, budget []float64, pool []int, k int, minMaxPayment float64, winner election.Project, tb election.ProjectComparator) bool {
	if k > len(pool) {
		return false
	}
	approvers := append(append([]int(nil), pp.Approvers...), pool[:k]...)
	payment, ok := maxPaymentFor(pp.Cost, approvers, budget)
	if !ok {
		return false
	}
	hypothetical := pp.WithApprovers(approvers)
	return pbmath.Less(payment, minMaxPayment) ||
		(pbmath.Equal(payment, minMaxPayment) && tb.Less(hypothetical, winner))
}

// minApproversToAfford finds the smallest number of richest-available
// non-approver voters whose combined budget, added to pp's own approvers,
// reaches pp's cost, bounded by voterCap.
func minApproversToAfford(pp election.Project, budget []float64, voterCap int) *int {
	pool := richNonApprovers(pp.Approvers, budget)
	total := sumBudget(pp.Approvers, budget)
	for k := 0; k <= voterCap && k <= len(pool); k++ {
		if k > 0 {
			total += budget[pool[k-1]]
		}
		if !pbmath.Less(total, float64(pp.Cost)) {
			return &k
		}
	}
	return nil
}

// richNonApprovers returns every voter index not already approving pp,
// sorted by descending budget (ties broken by ascending voter id).
func richNonApprovers(approvers []int, budget []float64) []int {
	approved := make(map[int]bool, len(approvers))
	for _, v := range approvers {
		approved[v] = true
	}
	pool := make([]int, 0, len(budget))
	for v := range budget {
		if !approved[v] {
			pool = append(pool, v)
		}
	}
	sort.Slice(pool, func(i, j int) bool {
		if budget[pool[i]] != budget[pool[j]] {
			return budget[pool[i]] > budget[pool[j]]
		}
		return pool[i] < pool[j]
	})
	return pool
}
