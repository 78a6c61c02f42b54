package main

import (
	"context"
	"os"

	"go.llib.dev/cursorkit/internal/commands"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"
)

func main() {
	l := &logging.Logger{Out: os.Stderr}
	cli.Main(context.Background(), commands.New(l))
}
