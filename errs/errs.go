package errs

import (
	"strconv"
)

// Err

type Err string

func (e Err) Error() string {
	return string(e)
}

// ErrWithDesc

type ErrWithDesc struct {
	Err  Err
	Desc string
}

func (e ErrWithDesc) Error() string {
	return e.Err.Error() + ", desc:" + e.Desc
}

func (e ErrWithDesc) Unwrap() error {
	return e.Err
}

// StatusErr is returned for a non-2xx http response.

type StatusErr struct {
	Err        Err
	StatusCode int
	Body       []byte
}

func (e *StatusErr) Error() string {
	return e.Err.Error() + ", status_code:" + strconv.Itoa(e.StatusCode)
}

func (e *StatusErr) Unwrap() error {
	return e.Err
}

// errors

const (
	InvalidPhoneNumber = Err("invalid_phone_number")
	MessageTooLong     = Err("message_too_long")
	InvalidArguments   = Err("invalid_arguments")
	BadJson            = Err("bad_json")
	NotAuthorized      = Err("not_authorized")
	BadStatusCode      = Err("bad_status_code")
)
