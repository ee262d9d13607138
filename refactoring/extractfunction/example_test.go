package extractfunction_test

import (
	"context"
	"os"

	"go.llib.dev/exemplar/refactoring/extractfunction"
)

func ExampleDemo() {
	_ = extractfunction.Demo(context.Background(), os.Stdout)

	// Output:
	// -- before --
	// Statement for Meadow Works
	//   oak table 2 x 799.00 = 1598.00
	//   tea mug   12 x 12.50 = 150.00
	// subtotal 1748.00
	// volume discount 87.40
	// amount due 1660.60
	// -- after --
	// Statement for Meadow Works
	//   oak table 2 x 799.00 = 1598.00
	//   tea mug   12 x 12.50 = 150.00
	// subtotal 1748.00
	// volume discount 87.40
	// amount due 1660.60
	// both render the same bytes: true
}
