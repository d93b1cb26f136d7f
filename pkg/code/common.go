package code

import (
	"fmt"

	"go.uber.org/multierr"
)

// 00 为通用错误码，业务模块从 01 开始
var (
	ErrInternalServerError = Froze("5000000000", "服务器内部错误")
	ErrInvalidParam        = Froze("4000000001", "请求参数不正确")
	ErrNotFound            = Froze("4040000002", "资源不存在")
	ErrCodeUnknown         = Froze("5000000005", "未知错误")
	ErrUnauthorized        = Froze("4010000006", "身份认证失败")
	ErrConflict            = Froze("4090000008", "资源已存在")
	ErrTooManyRequests     = Froze("4290000009", "请求过于频繁")
)

var builtin = []ErrorCode{
	ErrInternalServerError,
	ErrInvalidParam,
	ErrNotFound,
	ErrCodeUnknown,
	ErrUnauthorized,
	ErrConflict,
	ErrTooManyRequests,
}

// Register validates business codes against the builtin ones and each other,
// every problem found is reported
func Register(codes ...ErrorCode) error {
	var err error
	seen := make(map[string]string, len(builtin)+len(codes))
	for _, c := range append(append([]ErrorCode{}, builtin...), codes...) {
		if e := check(c); e != nil {
			err = multierr.Append(err, e)
			continue
		}
		if msg, ok := seen[c.Code()]; ok {
			err = multierr.Append(err, fmt.Errorf("error code %s already used by %q", c.Code(), msg))
			continue
		}
		seen[c.Code()] = c.Message()
	}
	return err
}

func check(c ErrorCode) error {
	if e, ok := c.(*errCode); ok && e.malformed {
		return fmt.Errorf("error code %v is malformed", c.Result())
	}
	if len(c.FullCode()) != 10 {
		return fmt.Errorf("error code %s must be 3(http)+7(code) digits", c.FullCode())
	}
	return nil
}
