package renderer

import (
	"fmt"
	"io"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// WriterLogger implements core.Logger by writing to a diagnostic stream,
// normally stderr so stdout stays free for image data
type WriterLogger struct {
	out io.Writer
}

func (wl *WriterLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(wl.out, format, args...)
}

// NewWriterLogger creates a logger that writes to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &WriterLogger{out: w}
}

// NopLogger discards all output
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}
