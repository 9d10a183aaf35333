// Command peerd dials a single Graphene-family peer, completes the
// handshake, and runs the dispatcher loop, following the reference
// client's __main__.py entry point (fixed target, INFO-level logging to
// stdout) but built as a proper subcommand CLI on gopkg.in/urfave/cli.v1.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/urfave/cli.v1"
)

func main() {
	log.Root().SetHandler(log.LvlFilterHandler(log.LvlInfo, log.StreamHandler(os.Stdout, log.TerminalFormat(true))))

	app := cli.NewApp()
	app.Name = "peerd"
	app.Usage = "a Graphene-family P2P client"
	app.Commands = []cli.Command{
		connectCommand,
		statusCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "peerd:", err)
		os.Exit(1)
	}
}
