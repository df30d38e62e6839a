package main

import (
	"fmt"

	"github.com/urfave/cli"
)

var argvCommand = cli.Command{
	Name:  "argv",
	Usage: "print the executable path and arguments, one per line",
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 0, exactArgs); err != nil {
			return err
		}
		var werr error
		err := getProcess(context).ArgvView().Range(func(_ int, arg string) bool {
			_, werr = fmt.Fprintln(context.App.Writer, arg)
			return werr == nil
		})
		if err != nil {
			return err
		}
		return werr
	},
}
