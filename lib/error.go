package lib

import "fmt"

type HttpError struct {
	StatusCode int
	Err        error
}

func (r *HttpError) Error() string {
	return fmt.Sprintf("status %d: error %v", r.StatusCode, r.Err)
}

func (r *HttpError) Unwrap() error {
	return r.Err
}

func NewHttpError(status int, err error) *HttpError {
	return &HttpError{StatusCode: status, Err: err}
}
