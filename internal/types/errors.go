package types

import "fmt"

// IOError reports a messages file that could not be opened or read. Err
// carries the coded errbuilder error.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ResolutionError reports a symbol resolver that failed to answer a query.
// A class or member that simply does not exist is not a ResolutionError.
type ResolutionError struct {
	ClassName string
	Member    string
	Err       error
}

func (e *ResolutionError) Error() string {
	if e.Member == "" {
		return fmt.Sprintf("resolve class %s: %v", e.ClassName, e.Err)
	}
	return fmt.Sprintf("resolve member %s.%s: %v", e.ClassName, e.Member, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
