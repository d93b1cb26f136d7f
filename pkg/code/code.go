package code

// ErrorCode is an error that knows the http status and the body it is answered with
type ErrorCode interface {
	error
	StatusCode() int
	Code() string
	FullCode() string
	Message() string
	Result() interface{}
	WithMessage(string) ErrorCode
	WithResult(interface{}) ErrorCode
	Is(error) bool
}
