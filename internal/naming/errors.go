package naming

import (
	"errors"
	"fmt"
)

var (
	ErrBlankName    = errors.New("name may not be blank")
	ErrReservedName = errors.New("reserved name")
	ErrInvalidChar  = errors.New("character not allowed in names")
	ErrNameInUse    = errors.New("name already in use")
	ErrNotUnique    = errors.New("name would not be unique")
)

// VetoError explains why a name or rename was refused. Message is shown to
// the user as is.
type VetoError struct {
	Name    string
	Message string
	Err     error
}

func (e *VetoError) Error() string {
	return e.Message
}

func (e *VetoError) Unwrap() error {
	return e.Err
}

func veto(err error, name, format string, args ...interface{}) *VetoError {
	return &VetoError{Name: name, Message: fmt.Sprintf(format, args...), Err: err}
}
