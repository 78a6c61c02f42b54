package commands

import (
	"fmt"
	"strings"

	"go.llib.dev/cursorkit/pkg/container"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"
)

type Sorted struct {
	N   int `flag:"n" required:"true" desc:"length of the tuples"`
	Max int `flag:"max" required:"true" desc:"elements are less than max"`

	Logger *logging.Logger
}

func (cmd Sorted) Summary() string { return "print strictly ordered tuples" }

func (cmd Sorted) ServeCLI(w cli.Response, r *cli.Request) {
	if cmd.N <= 0 || cmd.Max < 0 {
		badRequest(w, ErrInvalidBounds, "--n must be positive and --max can't be negative")
		return
	}
	var count int
	for tuple := range container.SortedTuples(cmd.N, cmd.Max).All() {
		parts := make([]string, len(tuple))
		for i, v := range tuple {
			parts[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
		count++
	}
	cmd.Logger.Debug(r.Context(), "sorted tuples printed",
		logging.Field("n", cmd.N),
		logging.Field("max", cmd.Max),
		logging.Field("count", count))
}
