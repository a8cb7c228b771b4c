// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/core"
)

type Neighbors struct {
	cmd *cobra.Command

	mainopts *Options
}

type neighborEntry struct {
	Vertex uint64 `json:"vertex"`
	Weight uint64 `json:"weight"`
	Edge   uint64 `json:"edge"`
}

type neighborsResult struct {
	Vertex    uint64          `json:"vertex"`
	Neighbors []neighborEntry `json:"neighbors"`
}

func NewNeighbors(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neighbors <vertex>",
		Short: "print the connections of a vertex",
		Args:  cobra.ExactArgs(1),
	}

	c := &Neighbors{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Neighbors) Run(args []string) error {
	v, err := vertexArg("query", args[0])
	if err != nil {
		return err
	}
	g, err := c.mainopts.graph()
	if err != nil {
		return err
	}

	conns := core.FindNeighbors(g, v)
	res := neighborsResult{Vertex: v.Unwrap(), Neighbors: make([]neighborEntry, len(conns))}
	for i, conn := range conns {
		res.Neighbors[i] = neighborEntry{
			Vertex: conn.OtherVertex.Unwrap(),
			Weight: conn.Weight[0],
			Edge:   conn.Edge.Unwrap(),
		}
	}

	return render(c.cmd.OutOrStdout(), c.mainopts.output, res, func(w io.Writer) error {
		if len(conns) == 0 {
			_, err := fmt.Fprintf(w, "%s has no neighbors\n", v)
			return err
		}
		for _, conn := range conns {
			if _, err := fmt.Fprintf(w, "%s weight=%d edge=%s\n", conn.OtherVertex, conn.Weight[0], conn.Edge); err != nil {
				return err
			}
		}
		return nil
	})
}
