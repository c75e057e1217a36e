package symdel_test

import (
	"fmt"

	"github.com/solrac97gr/symdel"
)

// Example_within demonstrates finding every close pair within one
// collection of strings.
func Example_within() {
	triplets, err := symdel.Within([]string{"fizz", "fuzz", "buzz"}, 1, true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, t := range triplets {
		fmt.Printf("%d %d %d\n", t.I, t.J, t.D)
	}
	// Output:
	// 0 1 1
	// 1 2 1
}

// Example_cross demonstrates matching one collection of query strings
// against a separate reference collection.
func Example_cross() {
	query := []string{"fizz", "fuzz", "buzz"}
	reference := []string{"fooo", "barr", "bazz", "buzz"}

	triplets, err := symdel.Cross(query, reference, 1, true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, t := range triplets {
		fmt.Printf("%d %d %d\n", t.I, t.J, t.D)
	}
	// Output:
	// 1 3 1
	// 2 2 1
	// 2 3 0
}

// Example_cached demonstrates building a reference index once and
// querying it repeatedly at a bound no larger than k_max.
func Example_cached() {
	reference := []string{"fooo", "barr", "bazz", "buzz"}

	cached, err := symdel.NewCached(reference, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	within, err := cached.Within(1, true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, t := range within {
		fmt.Printf("%d %d %d\n", t.I, t.J, t.D)
	}
	// Output:
	// 2 3 1
}
