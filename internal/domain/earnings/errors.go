package earnings

import (
	"errors"
	"fmt"
)

var (
	// ErrDataFetch marks a collaborator query failure. The computation aborts
	// instead of substituting zeros: a zeroed result would be
	// indistinguishable from a verified zero pay period.
	ErrDataFetch = errors.New("earnings data fetch failed")

	ErrInvalidPeriod = errors.New("period start must not be after period end")
)

// DataFetchError wraps a failed collaborator query with its source.
// errors.Is(err, ErrDataFetch) matches it.
type DataFetchError struct {
	Source string
	Err    error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Source, e.Err)
}

func (e *DataFetchError) Unwrap() error {
	return e.Err
}

func (e *DataFetchError) Is(target error) bool {
	return target == ErrDataFetch
}

// FetchError wraps err as a DataFetchError unless it already is one.
func FetchError(source string, err error) error {
	var dfe *DataFetchError
	if errors.As(err, &dfe) {
		return err
	}
	return &DataFetchError{Source: source, Err: err}
}
