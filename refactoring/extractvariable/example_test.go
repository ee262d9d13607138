package extractvariable_test

import (
	"context"
	"os"

	"go.llib.dev/exemplar/refactoring/extractvariable"
)

func ExampleDemo() {
	_ = extractvariable.Demo(context.Background(), os.Stdout)

	// Output:
	//  12kg over   80km fragile=false before: 1920 after: 1920
	//  70kg over  420km fragile=true  before: 11280 after: 11280
	// 260kg over 1200km fragile=false before: 39000 after: 39000
}
