package httperr

import (
	"errors"
	"net/http"
)

// Kind classifies a business error; each kind maps to one HTTP status.
type Kind int

const (
	KindInvalid Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUnavailable
)

type BusinessError struct {
	Code    string
	Kind    Kind
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func (e BusinessError) Status() int {
	switch e.Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code, Kind: KindInvalid}
}

func ErrInvalid(code, message string) error {
	return BusinessError{Code: code, Kind: KindInvalid, Message: message}
}

func ErrUnauthorized(code, message string) error {
	return BusinessError{Code: code, Kind: KindUnauthorized, Message: message}
}

func ErrForbidden(code, message string) error {
	return BusinessError{Code: code, Kind: KindForbidden, Message: message}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Code: code, Kind: KindNotFound, Message: message}
}

func ErrConflict(code, message string) error {
	return BusinessError{Code: code, Kind: KindConflict, Message: message}
}

func ErrUnavailable(code, message string) error {
	return BusinessError{Code: code, Kind: KindUnavailable, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return 0, false
}
