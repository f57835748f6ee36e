package pdfs

import (
	"fmt"
	"io"

	"github.com/temirov/journalclub/internal/utils"
)

// Reporter receives the human-readable lines produced by the audit workflows.
type Reporter interface {
	Report(line string)
}

// WriterReporter writes each reported line, followed by a newline, to an io.Writer.
type WriterReporter struct {
	writer io.Writer
}

// NewWriterReporter constructs a reporter that flushes after every line when the writer supports it.
func NewWriterReporter(writer io.Writer) *WriterReporter {
	if writer == nil {
		writer = io.Discard
	}
	return &WriterReporter{writer: utils.NewFlushingWriter(writer)}
}

// Report writes the line. Write failures are ignored; console output is best effort.
func (reporter *WriterReporter) Report(line string) {
	if reporter == nil || reporter.writer == nil {
		return
	}
	fmt.Fprintln(reporter.writer, line)
}
