// Package mescost implements the Method of Equal Shares, cost variant,
// and its cost-reduction counterfactual measure. Optimist-add,
// pessimist-add and singleton-add are not implemented for this engine:
// the ratio-keyed round loop makes the approver-count counterfactuals
// ill-posed in the same way pessimist-add is for mesapr (no ILP solver is
// carried by this module), so those measures have no function here.
/*
MES-Cost — equal per-voter budgets, ratio-keyed project funding

Description:
  Identical round loop to mesapr, except the priority key is a project's
  max-payment divided by its own cost (a payment-per-cost ratio) rather
  than the raw max-payment, and a win deducts max-payment-by-cost * cost
  from each approver's share instead of the raw max-payment.

cost_reduction:
  Because both the numerator (max-payment) and denominator (price) of the
  ratio depend on p's own hypothetical price, the round-local algebra used
  by mesapr's cost_reduction does not carry over directly. Instead this
  binary searches p's hypothetical price in [0, cost(p)] for the largest
  value at which a full re-run of Rule selects p.

Options:
  Rule accepts variadic Options (WithContext, WithOnRoundSelected), the same
  shape bfs.BFSOptions exposes for Ctx/OnVisit: WithContext aborts the round
  loop early (checked once per round), WithOnRoundSelected observes each
  round's winner. Neither tunes the payment-by-cost math itself.

Complexity: O(rounds * n log n) for Rule; O(log(cost(p)) * rounds * n log n)
for CostReductionFor.
*/
package mescost
