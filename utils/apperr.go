package utils

import "fmt"

type ErrKind int

const (
	KindValidation ErrKind = iota
	KindNotFound
	KindConflict
	KindOutOfStock
	KindInternal
)

// AppError is what the service layer hands back to controllers: a kind the
// HTTP layer can map to a status code plus a caller-safe message. The
// wrapped error (storage failures etc.) is for logs only, never responses.
type AppError struct {
	Kind    ErrKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func ValidationError(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func ConflictError(msg string) *AppError {
	return &AppError{Kind: KindConflict, Message: msg}
}

func OutOfStockError(msg string) *AppError {
	return &AppError{Kind: KindOutOfStock, Message: msg}
}

func InternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "internal error", Err: err}
}
