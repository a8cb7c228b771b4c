// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/dijkstra"
)

type Shortest struct {
	cmd *cobra.Command

	mainopts *Options
	legacy   bool
}

type shortestResult struct {
	Path []uint64 `json:"path"`
	Cost uint64   `json:"cost"`
}

func NewShortest(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shortest <from> <to>",
		Short: "print one minimum-cost path",
		Args:  cobra.ExactArgs(2),
	}

	c := &Shortest{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.BoolVar(&c.legacy, "legacy-seed", false, "seed the search at the first vertex of the document")
	return cmd
}

func (c *Shortest) Run(args []string) error {
	from, err := vertexArg("from", args[0])
	if err != nil {
		return err
	}
	to, err := vertexArg("to", args[1])
	if err != nil {
		return err
	}
	g, err := c.mainopts.graph()
	if err != nil {
		return err
	}

	var dopts []dijkstra.Option
	if c.legacy {
		dopts = append(dopts, dijkstra.WithSeedMode(dijkstra.SeedFirstVertex))
	}
	path, err := dijkstra.ShortestPath(g, from, to, dopts...)
	if err != nil {
		return err
	}
	cost, err := dijkstra.PathCost(g, path)
	if err != nil {
		return err
	}

	c.mainopts.logger().Debug("shortest {{from}} -> {{to}} costs {{cost}}", "from", from, "to", to, "cost", cost)

	res := shortestResult{Path: path.Uint64s(), Cost: cost}
	return render(c.cmd.OutOrStdout(), c.mainopts.output, res, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s (cost %d)\n", path, cost)
		return err
	})
}
