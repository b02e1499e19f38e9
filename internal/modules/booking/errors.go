package booking

import "errors"

var (
	ErrNotFound  = errors.New("booking resource not found")
	ErrForbidden = errors.New("booking not allowed")
)
