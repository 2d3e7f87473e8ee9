// Package greedy implements the Greedy-by-approvals participatory budgeting
// rule and its cost-reduction, optimist-add, pessimist-add and
// singleton-add counterfactual measures.
/*
Greedy — fund by raw approval count

Description:
  Sort candidate projects by number of approvers, descending, breaking ties
  with the caller-supplied ProjectComparator. Walk the sorted list, funding
  each project whose cost still fits the remaining budget, until the
  budget is exhausted.

Algorithm outline:
 1. Sort projects by len(Approvers) descending, ties broken by tb.
 2. For each project in order:
      if cost <= remaining budget: select it, deduct its cost.
      if remaining budget <= 0: stop.
 3. Return the selected projects in selection order.

Complexity: O(n log n) to sort, O(n) to scan.
*/
package greedy
