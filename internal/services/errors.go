package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Kind classifies the failures reported by the services
type Kind int

const (
	KindUnknown Kind = iota
	KindCafeNotFound
	KindPizzaNotFound
	KindEmptyCafeList
	KindEmptyPizzaList
	KindIDNotFound
	KindInvalidArgument
	KindUsernameNotFound
	KindBadCredentials
	KindConflict
	KindClientNotFound
)

func (k Kind) String() string {
	switch k {
	case KindCafeNotFound:
		return "CafeNotFound"
	case KindPizzaNotFound:
		return "PizzaNotFound"
	case KindEmptyCafeList:
		return "EmptyCafeList"
	case KindEmptyPizzaList:
		return "EmptyPizzaList"
	case KindIDNotFound:
		return "IdNotFound"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindUsernameNotFound:
		return "UsernameNotFound"
	case KindBadCredentials:
		return "BadCredentials"
	case KindConflict:
		return "Conflict"
	case KindClientNotFound:
		return "ClientNotFound"
	default:
		return "Unknown"
	}
}

// Error is a domain failure with a human readable message
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrCafeNotFound)
// works regardless of the message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Sentinels for errors.Is
var (
	ErrCafeNotFound     = newError(KindCafeNotFound, "Cafe not found")
	ErrPizzaNotFound    = newError(KindPizzaNotFound, "Pizza not found")
	ErrEmptyCafeList    = newError(KindEmptyCafeList, "The list of cafes is empty")
	ErrEmptyPizzaList   = newError(KindEmptyPizzaList, "The list of pizzas is empty")
	ErrIDNotFound       = newError(KindIDNotFound, "Cafe with the following ID does not exist")
	ErrInvalidArgument  = newError(KindInvalidArgument, "Invalid argument")
	ErrUsernameNotFound = newError(KindUsernameNotFound, "User not found!")
	ErrBadCredentials   = newError(KindBadCredentials, "Bad credentials")
	ErrConflict         = newError(KindConflict, "Resource already exists")
	ErrClientNotFound   = newError(KindClientNotFound, "Client not found")
)

// KindOf returns the kind carried by err, or KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate also checks the message because not every driver translates
// unique violations into gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
