package lloyd_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/lloyd"
)

func ExampleRun() {
	points := []lloyd.Point{lloyd.Pt(1, 1), lloyd.Pt(2, 1), lloyd.Pt(4, 3), lloyd.Pt(5, 4)}
	seeds := []lloyd.Point{lloyd.Pt(1, 1), lloyd.Pt(2, 1)}

	res, err := lloyd.Run(points, 2, seeds, lloyd.WithTrace())
	if err != nil {
		log.Fatal(err)
	}

	for _, s := range res.Trace {
		fmt.Printf("Iteration %d: %v\n", s.Iteration, s.Assignment)
	}
	fmt.Println("Converged:", res.Converged)
	fmt.Println("Centroids:", res.Centroids)
	// Output:
	// Iteration 1: {0: [(1, 1)], 1: [(2, 1), (4, 3), (5, 4)]}
	// Iteration 2: {0: [(1, 1), (2, 1)], 1: [(4, 3), (5, 4)]}
	// Iteration 3: {0: [(1, 1), (2, 1)], 1: [(4, 3), (5, 4)]}
	// Converged: true
	// Centroids: [(1.5, 1) (4.5, 3.5)]
}

func ExampleAssign() {
	// (2, 2) is equidistant from both centroids; the lower index wins.
	a, _ := lloyd.Assign([]lloyd.Point{lloyd.Pt(2, 2)}, []lloyd.Point{lloyd.Pt(0, 0), lloyd.Pt(4, 4)})
	fmt.Println(a)
	// Output: {0: [(2, 2)], 1: []}
}

func ExampleArgumentError() {
	_, err := lloyd.Run([]lloyd.Point{lloyd.Pt(1, 1)}, 0, nil)

	var argErr *lloyd.ArgumentError
	if errors.As(err, &argErr) {
		fmt.Println(errors.Is(err, lloyd.ErrInvalidArgument), argErr.Argument)
	}
	// Output: true k
}
