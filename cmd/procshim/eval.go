package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/mrzor/procshim/internal/query"
)

var evalCommand = cli.Command{
	Name:  "eval",
	Usage: "evaluate an expression against the process",
	ArgsUsage: `<expression>

Variables: argv, env, cmdline, platform, arch, version, versions, pid.
Map results are printed as one name.key=value line per entry.

EXAMPLE:
       # procshim eval 'env["HOME"]'
       # procshim eval --name build 'versions'`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "name",
			Value: "result",
			Usage: "prefix for printed results",
		},
	},
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, exactArgs); err != nil {
			return err
		}
		ev, err := query.Compile(context.Args().First())
		if err != nil {
			return err
		}
		output, err := ev.Evaluate(getProcess(context))
		if err != nil {
			return err
		}
		for _, pair := range query.Flatten(context.String("name"), output) {
			if _, err := fmt.Fprintf(context.App.Writer, "%s=%s\n", pair.Name, pair.Value); err != nil {
				return err
			}
		}
		return nil
	},
}
