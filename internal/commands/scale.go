package commands

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"go.llib.dev/cursorkit/pkg/lens"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

const ErrInvalidDecimal errorkit.Error = "ErrInvalidDecimal"

type Scale struct {
	Factor string `flag:"factor" required:"true" desc:"non-zero decimal scaling factor"`
	Negate bool   `flag:"negate" desc:"negate the value before it is scaled back"`
	Value  string `arg:"0" desc:"decimal value to set through the lens"`

	Logger *logging.Logger
}

func (cmd Scale) Summary() string {
	return "set a value through a decimal scaling lens, and print what is stored"
}

func (cmd Scale) ServeCLI(w cli.Response, r *cli.Request) {
	factor, err := parseDecimal("factor", cmd.Factor)
	if err != nil {
		badRequest(w, ErrInvalidDecimal, "%s", err.Error())
		return
	}
	if factor.IsZero() {
		badRequest(w, lens.ErrZeroFactor, "--factor must not be zero")
		return
	}
	value, err := parseDecimal("value", cmd.Value)
	if err != nil {
		badRequest(w, ErrInvalidDecimal, "%s", err.Error())
		return
	}

	var base lens.Lens[**apd.Decimal, *apd.Decimal] = lens.Pointer[*apd.Decimal]()
	if cmd.Negate {
		base = lens.NegateDecimal(base)
	}
	l := lens.ScaleDecimal(base, factor)

	backing := new(apd.Decimal)
	l.Set(&backing, value)

	fmt.Fprintf(w, "stored: %s\n", backing.Text('f'))
	fmt.Fprintf(w, "value: %s\n", l.Get(&backing).Text('f'))

	cmd.Logger.Info(r.Context(), "value scaled",
		logging.Field("factor", factor.Text('f')),
		logging.Field("negate", cmd.Negate),
		logging.Field("stored", backing.Text('f')))
}

func parseDecimal(name, raw string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", name, raw, err)
	}
	return d, nil
}
