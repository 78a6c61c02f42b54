// Package commands implements the cursorkit command line interface.
package commands

import (
	"fmt"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

// New returns the command multiplexer of cursorkit.
// Commands log their progress to l.
func New(l *logging.Logger) *cli.Mux {
	var m cli.Mux
	m.Handle("range", Range{Logger: l})
	m.Handle("sorted", Sorted{Logger: l})
	m.Handle("scale", Scale{Logger: l})
	return &m
}

// badRequest prints the error code and a message for the user.
// Wrapped errorkit errors are not printed as they may carry stack traces.
func badRequest(w cli.Response, code errorkit.Error, format string, args ...any) {
	w.ExitCode(cli.ExitCodeBadRequest)
	fmt.Fprintf(w, "[%s] %s\n", code, fmt.Sprintf(format, args...))
}
