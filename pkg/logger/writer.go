package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-colorable"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Output builds the log destination, colored stdout and/or a rotating file.
// Plain stdout is used when neither is asked for, the returned func closes the file
func Output(console bool, path string) (io.Writer, func() error) {
	var writers []io.Writer
	if console {
		writers = append(writers, colorable.NewColorableStdout())
	}
	closer := func() error { return nil }
	if path != "" {
		file := &lumberjack.Logger{
			Filename:   filepath.Clean(path),
			MaxSize:    500, // MB
			MaxBackups: 30,
			MaxAge:     30, // days
			Compress:   true,
		}
		writers = append(writers, file)
		closer = file.Close
	}
	switch len(writers) {
	case 0:
		return os.Stdout, closer
	case 1:
		return writers[0], closer
	default:
		return io.MultiWriter(writers...), closer
	}
}
