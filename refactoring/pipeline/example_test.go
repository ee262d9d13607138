package pipeline_test

import (
	"context"
	"os"

	"go.llib.dev/exemplar/refactoring/pipeline"
)

func ExampleDemo() {
	_ = pipeline.Demo(context.Background(), os.Stdout)

	// Output:
	// before: 3 paid orders, 86050 cents total, biggest 79900
	// after:  3 paid orders, 86050 cents total, biggest 79900
}
