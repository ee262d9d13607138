package errorkit_test

import (
	"errors"
	"fmt"

	"go.llib.dev/exemplar/pkg/errorkit"
)

const ErrNotFound errorkit.Error = "ErrNotFound"

func ExampleError() {
	// Error makes it possible to declare sentinel errors as constants.
	var err error = ErrNotFound

	if errors.Is(err, ErrNotFound) {
		fmt.Println("not found")
	}
	// Output: not found
}

func ExampleError_Wrap() {
	cause := fmt.Errorf("record 42 is missing")

	err := ErrNotFound.Wrap(cause)

	_ = errors.Is(err, ErrNotFound) // true
	_ = errors.Is(err, cause)      // true
}

func ExampleError_F() {
	err := ErrNotFound.F("order(ID:%d)", 42)

	_ = errors.Is(err, ErrNotFound) // true
}

func ExampleMerge() {
	// creates an error value that combines the input errors.
	err := errorkit.Merge(fmt.Errorf("foo"), fmt.Errorf("bar"), nil)
	_ = err
}

func ExampleFinish() {
	_ = func() (rErr error) {
		defer errorkit.Finish(&rErr, func() error {
			// close resources, the returned error merges into rErr
			return nil
		})

		return nil
	}()
}
