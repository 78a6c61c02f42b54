package commands

import (
	"fmt"

	"go.llib.dev/cursorkit/pkg/container"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

const ErrInvalidBounds errorkit.Error = "ErrInvalidBounds"

type Range struct {
	From int    `flag:"from" default:"0" desc:"first integer of the range"`
	To   int    `flag:"to" default:"10" desc:"end of the range, not included"`
	Op   string `flag:"op" default:"identity" enum:"identity,square,negate" desc:"operation applied on each integer"`
	Take int    `flag:"take" default:"-1" desc:"print at most this many elements, negative means all"`

	Logger *logging.Logger
}

func (cmd Range) Summary() string { return "print an integer range" }

func (cmd Range) ServeCLI(w cli.Response, r *cli.Request) {
	if cmd.To < cmd.From {
		badRequest(w, ErrInvalidBounds, "--to (%d) is less than --from (%d)", cmd.To, cmd.From)
		return
	}
	rng := container.Transform(container.IntegersBetween(cmd.From, cmd.To), operation(cmd.Op))
	seq := rng.All()
	if 0 <= cmd.Take && cmd.Take < rng.Len() {
		seq = container.Take(rng.Begin(), cmd.Take).All()
	}
	var count int
	for v := range seq {
		fmt.Fprintln(w, v)
		count++
	}
	cmd.Logger.Info(r.Context(), "range printed",
		logging.Field("from", cmd.From),
		logging.Field("to", cmd.To),
		logging.Field("op", cmd.Op),
		logging.Field("count", count))
}

func operation(name string) func(int) int {
	switch name {
	case "square":
		return func(v int) int { return v * v }
	case "negate":
		return func(v int) int { return -v }
	default:
		return func(v int) int { return v }
	}
}
