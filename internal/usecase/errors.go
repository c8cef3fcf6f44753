package usecase

import "errors"

// ErrorKind закрытый набор ошибок бизнес-логики.
// Каждый вид сам является ошибкой и оборачивается через %w.
type ErrorKind uint8

const (
	ErrIncompleteInput ErrorKind = iota + 1
	ErrEmailAlreadyExists
	ErrEmailNotFound
	ErrWrongPassword
	ErrNotAuthenticated
	ErrForbidden
	ErrNotFound
)

func (k ErrorKind) Error() string {
	switch k {
	case ErrIncompleteInput:
		return "incomplete input"
	case ErrEmailAlreadyExists:
		return "email already exists"
	case ErrEmailNotFound:
		return "email not found"
	case ErrWrongPassword:
		return "wrong password"
	case ErrNotAuthenticated:
		return "not authenticated"
	case ErrForbidden:
		return "forbidden"
	case ErrNotFound:
		return "not found"
	default:
		return "unknown error"
	}
}

// KindOf извлекает вид ошибки из цепочки.
// ok=false означает внутреннюю ошибку без вида.
func KindOf(err error) (ErrorKind, bool) {
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind, true
	}
	return 0, false
}
