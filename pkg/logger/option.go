package logger

import (
	"io"
)

type option struct {
	level       string
	writer      io.Writer
	serviceName string
	console     bool
}

type Option func(*option)

// WithLevel accepts zap level names, unknown names fall back to info
func WithLevel(level string) Option {
	return func(o *option) { o.level = level }
}

func WithWriter(w io.Writer) Option {
	return func(o *option) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithServerName stamps every entry with a service_name field
func WithServerName(name string) Option {
	return func(o *option) { o.serviceName = name }
}

// WithConsole switches from json to the human readable encoder with colored levels
func WithConsole(console bool) Option {
	return func(o *option) { o.console = console }
}
