// Package render writes the decoded element forest to an io.Writer in one
// of the supported external formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	matroska "github.com/go-ebml/mkvdump"
)

// Format selects the output encoding.
type Format int

// The two supported output formats.
const (
	FormatYAML Format = iota
	FormatJSON
)

// ParseFormat maps a --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "yaml", "":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("render: unknown format %q", s)
	}
}

// Options controls how a forest is rendered.
type Options struct {
	Format Format
	// LinearOutput renders the decoded elements as a flat, stream-order
	// list instead of a nested forest, mirroring --linear-output.
	LinearOutput bool
	// ShowPositions includes each element's absolute byte position.
	// When false, Position is stripped before encoding.
	ShowPositions bool
}

// Trees renders a forest of element trees per opts.
func Trees(w io.Writer, trees []matroska.Tree, opts Options) error {
	presented := make([]matroska.Presented, len(trees))
	for i, t := range trees {
		presented[i] = matroska.Present(t)
	}
	if !opts.ShowPositions {
		for i := range presented {
			stripPositions(&presented[i])
		}
	}

	var out any = presented
	if opts.LinearOutput {
		var flat []matroska.Presented
		for _, p := range presented {
			flatten(p, &flat)
		}
		out = flat
	}

	switch opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(out)
	}
}

// flatten appends p and every descendant, in stream order, to flat,
// clearing each copy's Children so the flat list never nests.
func flatten(p matroska.Presented, flat *[]matroska.Presented) {
	children := p.Children
	p.Children = nil
	*flat = append(*flat, p)
	for _, c := range children {
		flatten(c, flat)
	}
}

func stripPositions(p *matroska.Presented) {
	p.Position = nil
	for i := range p.Children {
		stripPositions(&p.Children[i])
	}
}
