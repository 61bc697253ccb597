package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/transport/allocate"
)

var methodsCmd = &cli.Command{
	Name:    "methods",
	Usage:   "List the available allocation methods",
	Aliases: []string{"m"},
	Action: func(ctx *cli.Context) error {
		tw := tabwriter.NewWriter(ctx.App.Writer, 0, 0, 2, ' ', 0)
		for _, m := range allocate.Methods() {
			fmt.Fprintf(tw, "%s\t%s\n", m.ID, m.Name)
		}

		return tw.Flush()
	},
}
