// SPDX-License-Identifier: MIT

package app_test

import (
	"bytes"
	"encoding/json"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/cmd/lvlpath/app"
	"github.com/katalvlaran/lvlpath/dijkstra"
	"github.com/katalvlaran/lvlpath/graphfile"
)

const detour = `
vertices: [1, 2, 3, 4]
edges:
  - {from: 1, to: 2, weight: [5]}
  - {from: 1, to: 3, weight: [10]}
  - {from: 2, to: 4, weight: [999]}
  - {from: 3, to: 4, weight: [1]}
`

const islands = `
vertices: [1, 2, 3, 4]
edges:
  - {from: 1, to: 2, weight: [1]}
  - {from: 3, to: 4, weight: [1]}
`

const legacy = `
vertices: [1, 2, 3, 4]
edges:
  - {from: 1, to: 2, weight: [1]}
  - {from: 1, to: 3, weight: [1]}
  - {from: 2, to: 4, weight: [1]}
  - {from: 3, to: 4, weight: [10]}
`

var _ = Describe("lvlpath command", func() {
	var fs vfs.FileSystem
	var cmd *cobra.Command
	var buf *bytes.Buffer

	run := func(args ...string) error {
		cmd.SetOut(buf)
		cmd.SetErr(buf)
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	BeforeEach(func() {
		fs = memoryfs.New()
		Expect(vfs.WriteFile(fs, "/detour.yaml", []byte(detour), 0o644)).To(Succeed())
		Expect(vfs.WriteFile(fs, "/islands.yaml", []byte(islands), 0o644)).To(Succeed())
		Expect(vfs.WriteFile(fs, "/legacy.yaml", []byte(legacy), 0o644)).To(Succeed())

		buf = bytes.NewBuffer(nil)
		cmd = app.New(fs)
	})

	Context("shortest", func() {
		It("prefers the globally cheaper route", func() {
			Expect(run("-f", "/detour.yaml", "shortest", "1", "4")).To(Succeed())
			Expect(buf.String()).To(Equal("1 -> 3 -> 4 (cost 11)\n"))
		})

		It("renders json", func() {
			Expect(run("-f", "/detour.yaml", "-o", "json", "shortest", "1", "4")).To(Succeed())
			Expect(buf.String()).To(MatchJSON(`{"path":[1,3,4],"cost":11}`))
		})

		It("reports unreachable destinations", func() {
			err := run("-f", "/islands.yaml", "shortest", "1", "4")
			Expect(err).To(MatchError(dijkstra.ErrNoPath))
		})

		It("reports unknown vertices", func() {
			err := run("-f", "/detour.yaml", "shortest", "1", "9")
			Expect(err).To(MatchError(dijkstra.ErrVertexNotFound))
		})

		It("supports the legacy seed", func() {
			Expect(run("-f", "/legacy.yaml", "shortest", "3", "4")).To(Succeed())
			Expect(buf.String()).To(Equal("3 -> 1 -> 2 -> 4 (cost 3)\n"))

			buf.Reset()
			cmd = app.New(fs)
			err := run("-f", "/legacy.yaml", "shortest", "--legacy-seed", "3", "4")
			Expect(err).To(MatchError(dijkstra.ErrNoPath))
		})

		It("rejects malformed vertex IDs", func() {
			Expect(run("-f", "/detour.yaml", "shortest", "one", "4")).NotTo(Succeed())
		})

		It("requires a graph document", func() {
			Expect(run("shortest", "1", "4")).NotTo(Succeed())
		})
	})

	Context("paths", func() {
		It("lists all simple paths shortest first", func() {
			Expect(run("-f", "/detour.yaml", "paths", "1", "4")).To(Succeed())
			Expect(buf.String()).To(Equal("1 -> 2 -> 4\n1 -> 3 -> 4\n"))
		})

		It("renders yaml", func() {
			Expect(run("-f", "/detour.yaml", "-o", "yaml", "paths", "1", "4")).To(Succeed())
			Expect(buf.String()).To(MatchYAML(`
count: 2
paths:
- [1, 2, 4]
- [1, 3, 4]
`))
		})

		It("is empty for unreachable pairs", func() {
			Expect(run("-f", "/islands.yaml", "paths", "1", "4")).To(Succeed())
			Expect(buf.String()).To(Equal("no path from 1 to 4\n"))
		})

		It("honors the depth limit", func() {
			Expect(run("-f", "/legacy.yaml", "paths", "--max-depth", "2", "1", "4")).To(Succeed())
			Expect(buf.String()).To(Equal("1 -> 2 -> 4\n1 -> 3 -> 4\n"))

			buf.Reset()
			cmd = app.New(fs)
			Expect(run("-f", "/detour.yaml", "paths", "--max-depth", "1", "1", "4")).To(Succeed())
			Expect(buf.String()).To(Equal("no path from 1 to 4\n"))
		})

		It("treats -1 as no limit", func() {
			Expect(run("-f", "/detour.yaml", "paths", "--max-depth=-1", "1", "4")).To(Succeed())
			Expect(buf.String()).To(Equal("1 -> 2 -> 4\n1 -> 3 -> 4\n"))
		})

		It("rejects depth limits below -1", func() {
			err := run("-f", "/detour.yaml", "paths", "--max-depth=-5", "1", "4")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("max-depth -5"))
		})
	})

	Context("neighbors", func() {
		It("lists connections in edge order", func() {
			Expect(run("-f", "/detour.yaml", "neighbors", "4")).To(Succeed())
			Expect(buf.String()).To(Equal("2 weight=999 edge=2\n3 weight=1 edge=3\n"))
		})
	})

	Context("info", func() {
		It("prints size and fingerprint", func() {
			doc, err := graphfile.Decode([]byte(detour))
			Expect(err).NotTo(HaveOccurred())
			fp, err := graphfile.Fingerprint(doc)
			Expect(err).NotTo(HaveOccurred())

			Expect(run("-f", "/detour.yaml", "-o", "json", "info")).To(Succeed())
			Expect(buf.String()).To(MatchJSON(`{"vertices":4,"edges":4,"fingerprint":"` + fp + `"}`))
		})
	})

	Context("generate", func() {
		It("prints a document", func() {
			Expect(run("generate", "path", "3")).To(Succeed())
			doc, err := graphfile.Decode(buf.Bytes())
			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Vertices).To(Equal([]uint64{1, 2, 3}))
			Expect(doc.Edges).To(Equal([]graphfile.EdgeDoc{
				{From: 1, To: 2, Weight: []uint64{1}},
				{From: 2, To: 3, Weight: []uint64{1}},
			}))
		})

		It("writes a file that other commands can load", func() {
			Expect(run("generate", "grid", "3", "--cols", "4", "--out", "/grid.yaml")).To(Succeed())

			buf.Reset()
			cmd = app.New(fs)
			Expect(run("-f", "/grid.yaml", "shortest", "1", "12")).To(Succeed())
			Expect(buf.String()).To(HavePrefix("1 -> "))
			Expect(buf.String()).To(HaveSuffix(" (cost 5)\n"))
		})

		It("draws weights from the full uint64 range", func() {
			Expect(run("-o", "json", "generate", "path", "3", "--seed", "1",
				"--min-weight", "0", "--max-weight", "18446744073709551615")).To(Succeed())

			var doc graphfile.Document
			Expect(json.Unmarshal(buf.Bytes(), &doc)).To(Succeed())
			Expect(doc.Vertices).To(Equal([]uint64{1, 2, 3}))
			Expect(doc.Edges).To(HaveLen(2))
			for _, e := range doc.Edges {
				Expect(e.Weight).To(HaveLen(1))
			}
		})

		It("rejects unknown kinds and bad parameters", func() {
			Expect(run("generate", "hexagon", "3")).NotTo(Succeed())
			cmd = app.New(fs)
			Expect(run("generate", "cycle", "2")).NotTo(Succeed())
		})
	})

	Context("logging", func() {
		It("rejects an invalid level", func() {
			Expect(run("-L", "chatty", "-f", "/detour.yaml", "info")).NotTo(Succeed())
		})

		It("accepts a valid level", func() {
			Expect(run("-L", "debug", "-f", "/detour.yaml", "info")).To(Succeed())
		})
	})
})
