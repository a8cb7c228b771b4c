// SPDX-License-Identifier: MIT

package graphfile

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/drone/envsubst"
	"github.com/gowebpki/jcs"
	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// REALM is the logging realm of graph document handling.
var REALM = logging.DefineRealm("lvlpath/graphfile", "graph documents")

// Option configures Decode and Load.
type Option func(*options)

type options struct {
	subst  bool
	lookup func(string) string
}

// WithEnvSubst expands ${VAR} references from the process environment
// before the document is parsed.
func WithEnvSubst() Option {
	return func(o *options) {
		o.subst = true
		o.lookup = nil
	}
}

// WithEnvLookup expands ${VAR} references using lookup. Panics on nil.
func WithEnvLookup(lookup func(string) string) Option {
	if lookup == nil {
		panic("graphfile: WithEnvLookup(nil)")
	}

	return func(o *options) {
		o.subst = true
		o.lookup = lookup
	}
}

// Decode parses a YAML or JSON document. Unknown fields are rejected.
func Decode(data []byte, opts ...Option) (*Document, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.subst {
		var (
			expanded string
			err      error
		)
		if o.lookup != nil {
			expanded, err = envsubst.Eval(string(data), o.lookup)
		} else {
			expanded, err = envsubst.EvalEnv(string(data))
		}
		if err != nil {
			return nil, errors.Wrap(err, "expanding environment references")
		}
		data = []byte(expanded)
	}

	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding graph document")
	}

	return &doc, nil
}

// Load reads and decodes the document at path in fs. A nil fs means the
// operating system file system.
func Load(fs vfs.FileSystem, path string, opts ...Option) (*Document, error) {
	if fs == nil {
		fs = osfs.OsFs
	}
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading graph document %q", path)
	}
	doc, err := Decode(data, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "graph document %q", path)
	}

	logging.DefaultContext().Logger(REALM).Debug("loaded {{path}}: {{vertices}} vertices, {{edges}} edges",
		"path", path, "vertices", len(doc.Vertices), "edges", len(doc.Edges))

	return doc, nil
}

// Save encodes d as YAML and writes it to path in fs.
func Save(fs vfs.FileSystem, path string, d *Document) error {
	if fs == nil {
		fs = osfs.OsFs
	}
	data, err := Encode(d)
	if err != nil {
		return err
	}

	return errors.Wrapf(vfs.WriteFile(fs, path, data, 0o644), "writing graph document %q", path)
}

// Encode renders d as YAML.
func Encode(d *Document) ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, "encoding graph document")
	}

	return data, nil
}

// Fingerprint returns the hex SHA-256 of the RFC 8785 canonical JSON form of
// d. Two documents with equal content have equal fingerprints regardless of
// key order or formatting in their source.
func Fingerprint(d *Document) (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", errors.Wrap(err, "marshalling graph document")
	}
	data, err = jcs.Transform(data)
	if err != nil {
		return "", errors.Wrap(err, "canonicalizing graph document")
	}
	h := sha256.Sum256(data)

	return hex.EncodeToString(h[:]), nil
}
