// SPDX-License-Identifier: MIT

package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/graphfile"
)

type Info struct {
	cmd *cobra.Command

	mainopts *Options
}

type infoResult struct {
	Vertices    int    `json:"vertices"`
	Edges       int    `json:"edges"`
	Fingerprint string `json:"fingerprint"`
}

func NewInfo(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "validate a graph document and print its size and fingerprint",
		Args:  cobra.NoArgs,
	}

	c := &Info{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Info) Run(args []string) error {
	doc, err := c.mainopts.document()
	if err != nil {
		return err
	}
	g, err := doc.Graph()
	if err != nil {
		return err
	}
	fp, err := graphfile.Fingerprint(doc)
	if err != nil {
		return err
	}

	res := infoResult{Vertices: g.VertexCount(), Edges: g.EdgeCount(), Fingerprint: fp}
	return render(c.cmd.OutOrStdout(), c.mainopts.output, res, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "vertices:    %d\nedges:       %d\nfingerprint: %s\n", res.Vertices, res.Edges, res.Fingerprint)
		return err
	})
}
