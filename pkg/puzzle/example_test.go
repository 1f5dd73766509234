package puzzle_test

import (
	"fmt"

	"github.com/buelent/untangle/pkg/geom"
	"github.com/buelent/untangle/pkg/puzzle"
)

func ExampleFormatMove() {
	fmt.Println(puzzle.FormatMove(3, geom.Point{X: 5, Y: -1, D: 2}))

	// Output:
	// P3:5,-1/2
}

func ExampleEncodeSolution() {
	pts := []geom.Point{
		{X: 1, Y: 1, D: 2},
		{X: 3, Y: 1, D: 2},
	}
	fmt.Println(puzzle.EncodeSolution(pts))

	// Output:
	// S;P0:1,1/2;P1:3,1/2
}

func ExampleState_Solve() {
	// Two edges, tangled on the starting circle. The solution string moves
	// vertices 0 and 2 to the left column and 1 and 3 to the right, so the
	// edges become two vertical non-crossing segments.
	st, err := puzzle.New(nil, puzzle.Params{N: 4}, "0-2,1-3")
	if err != nil {
		panic(err)
	}
	defer st.Release()

	solved, err := st.Solve("S;P0:1,1/2;P1:3,1/2;P2:1,3/2;P3:3,3/2")
	if err != nil {
		panic(err)
	}
	defer solved.Release()

	fmt.Println(solved.Completed)
	fmt.Println(solved.Cheated)

	// Output:
	// true
	// true
}

func ExampleValidateDescription() {
	p := puzzle.Params{N: 4}
	fmt.Println(puzzle.ValidateDescription(p, "0-2,1-3"))
	fmt.Println(puzzle.ValidateDescription(p, "0-9"))

	// Output:
	// <nil>
	// DESC_RANGE: number out of range in game description: 9
}
