package scheduling

import "errors"

// ===============================
// Error Taxonomy
// ===============================

type Kind int

const (
	KindUnauthenticated Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindInvalidState
	KindSlotUnavailable
	KindInternal
)

// Error carries a machine-readable code plus the taxonomy kind that decides
// how callers (and the HTTP layer) categorize the failure.
type Error struct {
	Kind Kind
	Code string
}

func (e *Error) Error() string {
	return e.Code
}

func IsKind(err error, kind Kind) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

// ===============================
// Constructors
// ===============================

func Unauthenticated(code string) error {
	return &Error{Kind: KindUnauthenticated, Code: code}
}

func Unauthorized(code string) error {
	return &Error{Kind: KindUnauthorized, Code: code}
}

func Forbidden(code string) error {
	return &Error{Kind: KindForbidden, Code: code}
}

func NotFound(code string) error {
	return &Error{Kind: KindNotFound, Code: code}
}

func InvalidState(code string) error {
	return &Error{Kind: KindInvalidState, Code: code}
}

func SlotUnavailable(code string) error {
	return &Error{Kind: KindSlotUnavailable, Code: code}
}

func Internal(code string) error {
	return &Error{Kind: KindInternal, Code: code}
}
