// SPDX-License-Identifier: MIT

// Package graphfile reads and writes graph documents, the YAML/JSON input
// format of the lvlpath command:
//
//	vertices: [1, 2, 3]
//	edges:
//	  - {from: 1, to: 2, weight: [4]}
//	  - {from: 2, to: 3, weight: [5]}
//
// A Document is converted to NewGraph input by Scalar (one weight component
// per edge) or Unweighted. Files are accessed through a vfs.FileSystem so
// callers and tests can substitute in-memory file systems.
package graphfile
