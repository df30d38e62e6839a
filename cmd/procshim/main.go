// procshim inspects the process object the way a hosted script would see it.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/mrzor/procshim/internal/config"
	"github.com/mrzor/procshim/internal/host"
	"github.com/mrzor/procshim/process"
)

const usage = `process compatibility layer inspector

procshim exposes argv, env and the other members of a Node-style process
object backed by the running Go program.`

const processKey = "process"

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "procshim"
	app.Usage = usage
	app.Version = host.BuildVersion
	app.ErrWriter = os.Stderr
	app.Metadata = map[string]interface{}{}
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug output for logging",
		},
		cli.BoolFlag{
			Name:  "no-write-through",
			Usage: "keep env writes in the snapshot instead of the host environment",
		},
	}
	app.Commands = []cli.Command{
		infoCommand,
		argvCommand,
		envCommand,
		evalCommand,
	}
	app.Before = func(context *cli.Context) error {
		if _, ok := context.App.Metadata[processKey]; ok {
			return nil
		}

		cfg, err := config.Parse()
		if err != nil {
			return err
		}
		log, err := cfg.Logger(context.App.ErrWriter)
		if err != nil {
			return err
		}
		if context.GlobalBool("debug") {
			log.SetLevel(logrus.DebugLevel)
		}
		writeThrough := cfg.EnvWriteThrough && !context.GlobalBool("no-write-through")

		h := host.NewOS(host.WithLogger(log))
		context.App.Metadata[processKey] = process.New(h,
			process.WithLogger(log),
			process.WithEnvWriteThrough(writeThrough),
		)
		return nil
	}
	return app
}

func getProcess(context *cli.Context) *process.Process {
	return context.App.Metadata[processKey].(*process.Process)
}

const (
	exactArgs = iota
	minArgs
	maxArgs
)

func checkArgs(context *cli.Context, expected, checkType int) error {
	var err error
	cmdName := context.Command.Name
	switch checkType {
	case exactArgs:
		if context.NArg() != expected {
			err = fmt.Errorf("%s: %q requires exactly %d argument(s)", context.App.Name, cmdName, expected)
		}
	case minArgs:
		if context.NArg() < expected {
			err = fmt.Errorf("%s: %q requires a minimum of %d argument(s)", context.App.Name, cmdName, expected)
		}
	case maxArgs:
		if context.NArg() > expected {
			err = fmt.Errorf("%s: %q requires a maximum of %d argument(s)", context.App.Name, cmdName, expected)
		}
	}

	if err != nil {
		fmt.Fprintf(context.App.ErrWriter, "Incorrect Usage.\n\n")
		_ = cli.ShowCommandHelp(context, cmdName)
		return err
	}
	return nil
}
