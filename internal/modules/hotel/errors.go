package hotel

import "errors"

var (
	ErrNotFound  = errors.New("hotel not found")
	ErrForbidden = errors.New("hotel listing not allowed")
)
