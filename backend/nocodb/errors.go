package nocodb

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout means the request deadline elapsed before the service
	// answered.
	ErrTimeout = errors.New("nocodb: request timed out")
	// ErrUnavailable means the service could not be reached at all.
	ErrUnavailable = errors.New("nocodb: service unavailable")
	// ErrUnexpectedShape means the response body did not match any of the
	// known list formats.
	ErrUnexpectedShape = errors.New("nocodb: unexpected response shape")
	// ErrFieldMissing means a required field was absent from a record.
	// Distinct from the field being present but empty.
	ErrFieldMissing = errors.New("nocodb: field missing from record")
)

// HTTPError is returned for any non-2xx response from the record service.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("nocodb: http %d: %s", e.Status, e.Body)
}
