package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/saldo/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	if err := flag.CommandLine.Parse(cmd.WithDefaultCommand(os.Args[1:])); err != nil {
		os.Exit(int(subcommands.ExitUsageError))
	}
	os.Exit(int(commander.Execute(context.Background())))
}
