// Package errorkit contains the error handling conventions of the catalog.
package errorkit

import (
	"errors"
	"fmt"
	"strings"
)

// Error is an error implementation that can be declared on a const block.
// Sentinel errors declared this way are immutable,
// unlike the classic exported error variables made with errors.New.
//
//	const ErrNotFound errorkit.Error = "the requested thing is not found"
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

// Wrap bundles another error value together with this Error,
// and returns an error value that matches both of them with errors.Is.
func (err Error) Wrap(oth error) error {
	if oth == nil {
		return err
	}
	return wrapper{Owner: err, Wrapped: oth}
}

// F formats a detail message and attaches it to the Error through wrapping.
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

type wrapper struct {
	Owner   Error
	Wrapped error // never nil
}

func (w wrapper) Error() string {
	return fmt.Sprintf("[%s] %s", w.Owner, w.Wrapped.Error())
}

func (w wrapper) As(target any) bool {
	return errors.As(w.Owner, target) || errors.As(w.Wrapped, target)
}

func (w wrapper) Is(target error) bool {
	return errors.Is(w.Owner, target) || errors.Is(w.Wrapped, target)
}

// Merge combines all given non nil error values into a single error value.
// If no valid error is given, nil is returned.
// If only a single non nil error value is given, that error value is returned.
func Merge(errs ...error) error {
	var retained []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		retained = append(retained, err)
	}
	if len(retained) == 0 {
		return nil
	}
	if len(retained) == 1 {
		return retained[0]
	}
	return multiError(retained)
}

type multiError []error

func (errs multiError) Error() string {
	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (errs multiError) As(target any) bool {
	for _, err := range errs {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}

func (errs multiError) Is(target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Finish is a helper to collect the error of a closing operation from a deferred context.
//
// Usage:
//
//	defer errorkit.Finish(&returnError, db.Close)
func Finish(returnErr *error, blk func() error) {
	*returnErr = Merge(*returnErr, blk())
}
