// Package pabumeasures is the documentation home for a small
// computational-social-choice library: participatory budgeting under
// approval ballots.
//
// 🚀 What is participatory budgeting?
//
//	Voters approve a subset of proposed projects; a fixed budget funds as
//	many of them as an aggregation rule decides. This module implements
//	five such rules and, for each, the counterfactual "how close did this
//	losing project come to winning?" measures.
//
// ✨ Rule families:
//
//	greedy/      — sort by approval count, fund greedily
//	greedycost/  — sort by approvals-per-cost ratio, fund greedily
//	phragmen/    — Sequential Phragmén load-balancing
//	mesapr/      — Method of Equal Shares, approval variant
//	mescost/     — Method of Equal Shares, cost variant
//
// Every rule reads an election/Election built from the election package,
// which also holds the Project value type and the ProjectComparator used
// to break ties deterministically. Rule is multi-round for phragmen,
// mesapr and mescost, so those three packages' Rule also accepts variadic
// Options for round-scoped cancellation (WithContext) and instrumentation
// (WithOnRoundSelected); greedy and greedycost are single linear scans and
// carry neither.
//
// Quick example:
//
//	e := election.Election{
//	    Budget:    5,
//	    NumVoters: 3,
//	    Projects: []election.Project{
//	        {ID: 0, Cost: 3, Name: "a", Approvers: []int{0, 1}},
//	        {ID: 1, Cost: 2, Name: "b", Approvers: []int{0, 1}},
//	        {ID: 2, Cost: 4, Name: "c", Approvers: []int{2}},
//	    },
//	}
//	winners := greedy.Rule(e, election.ByCostAscThenVotesDesc)
//
// This package holds no code of its own; see the subpackages above.
package pabumeasures
