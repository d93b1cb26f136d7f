package v

import "net/textproto"

var (
	HeaderTraceID       = textproto.CanonicalMIMEHeaderKey("X-Trace-ID")
	HeaderAuthorization = textproto.CanonicalMIMEHeaderKey("Authorization")
	HeaderLocation      = textproto.CanonicalMIMEHeaderKey("Location")
	HeaderRealIP        = textproto.CanonicalMIMEHeaderKey("X-Real-IP")
)

// 鉴权方案
const BearerScheme = "Bearer "

// gin上下文中保存的键
const (
	KeySubject = "subject"
)
