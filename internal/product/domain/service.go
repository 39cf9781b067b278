package domain

import "context"

type Service interface {
	Create(ctx context.Context, payload Payload) (*Product, error)
	Update(ctx context.Context, id int64, payload Payload) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, category string) ([]Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// ValidationError reports a missing or malformed field. The message is
// user-facing and surfaced verbatim over the wire.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// InternalError wraps a store-layer failure with the operation it interrupted.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string { return "Error " + e.Op + ": " + e.Err.Error() }

func (e *InternalError) Unwrap() error { return e.Err }
