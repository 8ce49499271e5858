package commands

import (
	"errors"
	"log/slog"

	"github.com/dotcommander/tempnamed/internal/app"
	"github.com/dotcommander/tempnamed/internal/output"
	"github.com/dotcommander/tempnamed/pkg/tempdir"
	"github.com/dotcommander/tempnamed/pkg/tempnamed"
)

type printedError struct {
	err error
}

func (e printedError) Error() string {
	// Intentionally hide the original error: the JSON error response is the output.
	return "error already printed"
}

// cmdErr prints the JSON error envelope, logs the failure with any structured
// attributes the error carries, and wraps it so Execute does not report it a
// second time.
func cmdErr(err error) error {
	if err == nil {
		return nil
	}
	_ = output.PrintError(err)

	attrs := []any{"error", err.Error()}
	type slogAttrError interface {
		SlogAttrs() []any
	}
	var detailed slogAttrError
	if errors.As(err, &detailed) {
		attrs = append(attrs, detailed.SlogAttrs()...)
	}
	slog.Error("command error", attrs...)
	return printedError{err: err}
}

// newProvider builds the CLI's temp-dir provider from the resolved temp root.
// Created paths are handed to the caller on stdout and must outlive the
// process, so the CLI never registers them for cleanup.
func newProvider() (*tempdir.Provider, error) {
	root, err := app.GetTempRoot()
	if err != nil {
		return nil, err
	}
	return &tempdir.Provider{Root: root, Keep: true}, nil
}

// buildOptions assembles library options from command flags plus config
// defaults, wiring the CLI provider when --tmp asks for the managed
// directory.
func buildOptions(name, dir string, inTemp bool, suffixStart string) (tempnamed.Options, error) {
	if suffixStart == "" {
		suffixStart = app.DefaultSuffixStart()
	}
	if inTemp && dir == "" {
		prov, err := newProvider()
		if err != nil {
			return tempnamed.Options{}, err
		}
		tempnamed.SetTempDirProvider(prov)
	}
	return tempnamed.Options{
		Name:        name,
		Dir:         dir,
		InTempDir:   inTemp,
		SuffixStart: suffixStart,
	}, nil
}
