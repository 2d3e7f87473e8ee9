package mesapr_test

import (
	"fmt"

	"github.com/mdbrnowski/pabumeasures/election"
	"github.com/mdbrnowski/pabumeasures/mesapr"
)

// ExampleRule funds the project whose approvers can uniformly afford it at
// the lowest shared contribution. Here both projects ask 1 of each
// approver, so the tie-break (ascending cost) funds bench; voter 0 is then
// spent, and library becomes unaffordable.
func ExampleRule() {
	e := election.Election{
		Budget:    2,
		NumVoters: 2,
		Projects: []election.Project{
			{ID: 0, Cost: 2, Name: "library", Approvers: []int{0, 1}},
			{ID: 1, Cost: 1, Name: "bench", Approvers: []int{0}},
		},
	}
	winners := mesapr.Rule(e, election.ByCostAscThenVotesDesc)
	for _, w := range winners {
		fmt.Println(w.Name)
	}
	// Output:
	// bench
}
