// Package mesapr implements the Method of Equal Shares, approval variant,
// and its cost-reduction, optimist-add and singleton-add counterfactual
// measures. Pessimist-add is not implemented: the original solves it with
// an integer program over voter-type multiplicities, and this package
// carries no ILP solver dependency, so that measure has no function here
// rather than a function that always reports absent.
/*
MES-Approval — equal per-voter budgets, iterative project funding

Description:
  Every voter starts with an equal share of the budget. Each round, every
  remaining project computes the uniform "max-payment" its approvers would
  need to chip in to fund it from their own shares; the project demanding
  the smallest max-payment wins, ties broken by the supplied comparator.
  Winning approvers pay that amount out of their share; the round repeats
  until no project is affordable.

Scheduling:
  A min-heap keyed by each candidate's last-computed max-payment drives the
  round loop (mirrors a Dijkstra-style runner: pop, validate the cached key
  against the best found so far, recompute, reinsert). Max-payments are
  monotonically non-decreasing round over round because voter budgets only
  shrink, so a cached key worse than the current best can never improve.

Options:
  Rule accepts variadic Options (WithContext, WithOnRoundSelected), the same
  shape bfs.BFSOptions exposes for Ctx/OnVisit: WithContext aborts the round
  loop early (checked once per round), WithOnRoundSelected observes each
  round's winner. Neither tunes the max-payment math itself.

Complexity: O(rounds * n log n) amortized.
*/
package mesapr
