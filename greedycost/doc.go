// Package greedycost implements the Greedy-by-approvals-per-cost
// participatory budgeting rule and its cost-reduction, optimist-add,
// pessimist-add and singleton-add counterfactual measures.
/*
GreedyCost — fund by approvals-per-cost ratio

Description:
  Identical scaffold to the greedy package, but projects are sorted by
  approvers/cost descending instead of raw approver count. The ratio
  comparison is done by cross-multiplication (|approvers(a)|*cost(b) vs
  |approvers(b)|*cost(a)) to avoid floating-point division.

Algorithm outline:
 1. Sort projects by approvers/cost descending, ties broken by tb.
 2. For each project in order:
      if cost <= remaining budget: select it, deduct its cost.
      if remaining budget <= 0: stop.
 3. Return the selected projects in selection order.

Complexity: O(n log n) to sort, O(n) to scan.
*/
package greedycost
