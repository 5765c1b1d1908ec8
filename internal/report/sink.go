package report

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// Sink receives the text of a report being shared
type Sink interface {
	Share(text string) error
}

// WriterSink prints the report to a writer, usually stdout
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Share(text string) error {
	_, err := fmt.Fprintln(s.W, text)
	return err
}

// ClipboardSink copies the report to the system clipboard
type ClipboardSink struct{}

func (ClipboardSink) Share(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy report: %w", err)
	}
	return nil
}
