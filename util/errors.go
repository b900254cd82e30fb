package util

const (
	ERROR_BAD_SCRIPT_PATH       = 201
	ERROR_BAD_SCRIPT            = 202
	ERROR_BAD_PATTERN           = 203
	ERROR_NO_KINDS              = 204
	ERROR_BAD_STATS_PATH        = 205
	ERROR_UNSUPPORTED_OPERATION = 206
)

type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}
