// Package phragmen implements the sequential Phragmen participatory
// budgeting rule and its cost-reduction counterfactual measure.
/*
Phragmen — sequential load-balancing

Description:
  Each voter carries a load, starting at zero. In every round, every
  remaining project is scored by the load its approvers would reach if
  the project were funded now and its cost split evenly among them
  (projects with no approvers are scored as infeasible). The project
  with the smallest such max-load is funded, ties broken by tb; the
  approvers' loads are raised to the winning max-load and the round
  repeats over the remaining projects.

Algorithm outline:
 1. load[v] = 0 for every voter v.
 2. While projects remain:
      a. For each project, max_load = cost / |approvers|, or max_load =
         (sum of current load over approvers + cost) / |approvers|;
         infeasible (no approvers) scores +infinity.
      b. If any project tied at the minimum max_load costs more than the
         remaining budget, stop.
      c. Otherwise pick tb's minimum among the tied projects.
      d. Fund it; set load[v] = max_load for every approver v; remove it
         from the remaining set.
 3. Return the funded projects in selection order.

Options:
  Rule accepts variadic Options (WithContext, WithOnRoundSelected), mirroring
  bfs.BFSOptions.Ctx/OnVisit: WithContext lets a caller abort between rounds
  (checked once per round, same cadence as the round loop itself), and
  WithOnRoundSelected observes each round's winner as it's chosen. Neither
  tunes the max-load math itself.

Complexity: O(rounds * n * avg_approvers), rounds <= n.
*/
package phragmen
