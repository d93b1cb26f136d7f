package code

import (
	"fmt"
	"net/http"
	"strconv"

	"restaurants/pkg/json"
)

// Froze parses code as <3 digit status><7 digit code>. A malformed code yields an
// internal server error carrying the raw input as result
func Froze(code, message string) ErrorCode {
	e := &errCode{status: http.StatusInternalServerError, code: "0000001", message: message, malformed: true}
	if len(code) <= 3 {
		e.result = code
		return e
	}
	status, err := strconv.Atoi(code[:3])
	if err != nil || status < 100 || status > 599 {
		e.result = code
		return e
	}
	e.status, e.code, e.malformed = status, code[3:], false
	return e
}

type errCode struct {
	status  int
	code    string // 2(module)+5(error)
	message string
	result  interface{}

	malformed bool // Froze could not parse the code
}

func (e *errCode) Error() string {
	if e.result == nil {
		return fmt.Sprintf("%s %s", e.FullCode(), e.message)
	}
	return fmt.Sprintf("%s %s: %v", e.FullCode(), e.message, e.result)
}

func (e *errCode) StatusCode() int { return e.status }

func (e *errCode) Code() string { return e.code }

func (e *errCode) FullCode() string { return fmt.Sprintf("%3d%s", e.status, e.code) }

func (e *errCode) Message() string { return e.message }

func (e *errCode) Result() interface{} { return e.result }

func (e *errCode) WithMessage(msg string) ErrorCode {
	c := *e
	c.message = msg
	return &c
}

func (e *errCode) WithResult(result interface{}) ErrorCode {
	c := *e
	c.result = result
	return &c
}

// Is matches on the code part only, status and result are ignored
func (e *errCode) Is(target error) bool {
	t, ok := target.(ErrorCode)
	return ok && t.Code() == e.code
}

// MarshalJSON renders the response body {"code","message","result"}
func (e *errCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code    string      `json:"code"`
		Message string      `json:"message"`
		Result  interface{} `json:"result"`
	}{
		Code:    e.FullCode(),
		Message: e.message,
		Result:  e.result,
	})
}
