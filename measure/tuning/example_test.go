package tuning_test

import (
	"fmt"

	"github.com/cwbudde/algo-pitch/measure/tuning"
)

func ExampleReference_Closest() {
	n, err := tuning.Standard.Closest(445)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s %+.1f cents %s\n", n.Name, n.Cents, n.Direction())
	// Output: A4 +19.6 cents sharp
}
