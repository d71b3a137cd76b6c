package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/benedict2310/deployseo/internal/cli"
	"github.com/benedict2310/deployseo/internal/envmode"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Environ()); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

func run(args, environ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCmd(version, envmode.FromEnviron(environ))
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
