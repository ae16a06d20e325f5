package adapters

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/Hajin-Jeon/KRGDB-parser/internal/ports"
)

// OutputSinkAdapter prints record lines to Stdout, or appends them to
// Path when one is set. The file is opened and closed for every line so
// an interrupted run leaves only whole lines behind.
type OutputSinkAdapter struct {
	Path   string
	Stdout io.Writer
}

func NewOutputSinkAdapter(path string) OutputSinkAdapter {
	return OutputSinkAdapter{Path: strings.TrimSpace(path), Stdout: os.Stdout}
}

func (a OutputSinkAdapter) CheckWritable() error {
	if a.Path == "" {
		return nil
	}
	file, err := a.open()
	if err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodePermissionDenied).
			WithMsg("output file is not writable").
			WithCause(err)
	}
	return nil
}

func (a OutputSinkAdapter) WriteRecord(line string) error {
	if a.Path == "" {
		out := a.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write record").
				WithCause(err)
		}
		return nil
	}
	file, err := a.open()
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := file.WriteString(line + "\n"); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to append record").
			WithCause(err)
	}
	return nil
}

func (a OutputSinkAdapter) open() (*os.File, error) {
	file, err := os.OpenFile(a.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodePermissionDenied).
			WithMsg("output file is not writable").
			WithCause(err)
	}
	return file, nil
}

var _ ports.RecordSinkPort = OutputSinkAdapter{}
