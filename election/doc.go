// Package election defines the immutable value types shared by every rule
// engine in this module: Project, Election, and ProjectComparator.
//
// Projects carry an explicit ID; rule engines compare projects by ID, not
// by structural equality, because the counterfactual measures (cost
// reduction, optimist/singleton-add) construct hypothetical projects that
// share a target's name and approvers but not its cost.
package election
