package election

import "errors"

// ErrApproverOutOfRange indicates a project approves a voter index outside
// [0, NumVoters).
var ErrApproverOutOfRange = errors.New("election: approver index out of range")

// ErrTargetOutOfRange indicates a measure was asked about a project index
// outside [0, len(Projects)).
var ErrTargetOutOfRange = errors.New("election: target project index out of range")

// Project is an immutable candidate: an integer cost, a display name used
// only for stable lexicographic tie-breaks, and the ordered set of voters
// who approve it.
//
// ID is the project's identity for equality purposes inside rule engines;
// two Projects are considered the same project iff their IDs match, even
// if a counterfactual measure has rewritten Cost to a hypothetical value.
type Project struct {
	ID        int
	Cost      int64
	Name      string
	Approvers []int
}

// WithCost returns a copy of p with Cost replaced by cost, sharing the same
// ID, Name and Approvers slice. Used by counterfactual measures to build a
// hypothetical project to feed into a ProjectComparator, per the "pass the
// hypothetical by value" note in the source design.
func (p Project) WithCost(cost int64) Project {
	p.Cost = cost
	return p
}

// WithApprovers returns a copy of p with Approvers replaced, sharing the
// same ID, Name and Cost. Used by the optimist/singleton-add measures to
// evaluate a hypothetical larger approver set for the target project.
func (p Project) WithApprovers(approvers []int) Project {
	p.Approvers = approvers
	return p
}

// Election is the immutable input to every rule: a total budget, a voter
// count, and the candidate projects.
type Election struct {
	Budget    int64
	NumVoters int
	Projects  []Project
}

// Validate checks the §3 invariant: every approver index referenced by
// every project lies in [0, NumVoters). Rule engines do not re-check this;
// callers are expected to validate once after construction.
func (e Election) Validate() error {
	for _, p := range e.Projects {
		for _, v := range p.Approvers {
			if v < 0 || v >= e.NumVoters {
				return ErrApproverOutOfRange
			}
		}
	}
	return nil
}
