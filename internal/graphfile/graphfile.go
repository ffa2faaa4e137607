// Package graphfile reads and writes two-metric graphs and query batches as
// YAML documents. JSON documents are accepted too, JSON being a subset of
// YAML.
//
// Graph document:
//
//	nodes:
//	  A: [{to: B, distance: 10, cost: 5}]
//	  B: []
//
// Every graph returned by Decode or Load has passed core.Validate.
package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
)

// ErrDecode indicates a document that is not well-formed YAML or does not
// have the expected shape.
var ErrDecode = errors.New("graphfile: cannot decode document")

// Document is the on-disk form of a graph.
type Document struct {
	Nodes map[string][]core.Edge[string] `yaml:"nodes" json:"nodes"`
}

// Decode reads one graph document from r and validates it. Unknown fields
// and duplicate node keys are rejected.
func Decode(r io.Reader) (core.Graph[string], error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	g := core.Graph[string](doc.Nodes)
	if g == nil {
		g = core.Graph[string]{}
	}
	if err := core.Validate(g); err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}

	return g, nil
}

// Load decodes the graph document stored at path.
func Load(path string) (core.Graph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Encode writes g as a graph document. Node keys are emitted in sorted order
// and arcs in list order, so equal graphs encode to equal bytes. Sinks are
// written as empty lists.
func Encode(w io.Writer, g core.Graph[string]) error {
	doc := Document{Nodes: make(map[string][]core.Edge[string], len(g))}
	for n, edges := range g {
		if edges == nil {
			edges = []core.Edge[string]{}
		}
		doc.Nodes[n] = edges
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}

// Save writes g to path, replacing any existing file.
func Save(path string, g core.Graph[string]) error {
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("graphfile: write %s: %w", path, err)
	}

	return nil
}
