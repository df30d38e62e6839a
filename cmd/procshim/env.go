package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"
)

var envCommand = cli.Command{
	Name:  "env",
	Usage: "print environment variables",
	ArgsUsage: `[NAME]

Without NAME every variable is printed as NAME=value in key order.
With NAME only its value is printed; a missing variable is an error.
--live reads NAME from the host environment rather than the cached snapshot.`,
	Flags: []cli.Flag{
		cli.StringSliceFlag{
			Name:  "set",
			Usage: "set NAME=VALUE before printing (repeatable)",
		},
		cli.StringSliceFlag{
			Name:  "unset",
			Usage: "remove NAME before printing (repeatable)",
		},
		cli.BoolFlag{
			Name:  "live",
			Usage: "read NAME from the host environment instead of the snapshot",
		},
	},
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, maxArgs); err != nil {
			return err
		}
		p := getProcess(context)
		v := p.EnvView()

		for _, kv := range context.StringSlice("set") {
			name, value, ok := strings.Cut(kv, "=")
			if !ok || name == "" {
				return fmt.Errorf("--set requires NAME=VALUE, got %q", kv)
			}
			if err := v.Set(name, value); err != nil {
				return err
			}
		}
		for _, name := range context.StringSlice("unset") {
			if err := v.Delete(name); err != nil {
				return err
			}
		}

		if name := context.Args().First(); name != "" {
			lookup := v.Get
			if context.Bool("live") {
				lookup = p.Getenv
			}
			value, ok, err := lookup(name)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("environment variable %q is not set", name)
			}
			_, err = fmt.Fprintln(context.App.Writer, value)
			return err
		}

		var werr error
		err := v.Range(func(key, value string) bool {
			_, werr = fmt.Fprintf(context.App.Writer, "%s=%s\n", key, value)
			return werr == nil
		})
		if err != nil {
			return err
		}
		return werr
	},
}
