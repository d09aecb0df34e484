// Package export serializes routed cable layouts to text-based formats.
package export

import (
	"fmt"

	"cabling/core"
)

// Document pairs an input layout with its routed cables.
type Document struct {
	Nodes    []core.Node    `json:"nodes"`
	Channels []core.Channel `json:"channels"`
	Cables   []core.Cable   `json:"cables"`
}

// Format represents an export format.
type Format string

const (
	// FormatJSON exports the raw routed data.
	FormatJSON Format = "json"
	// FormatSVG exports a static drawing of nodes, channels and cables.
	FormatSVG Format = "svg"
)

// Exporter converts a routed document to a target format.
type Exporter interface {
	Export(doc *Document) (string, error)
	// GetFileExtension returns the recommended file extension for this format.
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format.
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format.
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatSVG:
		return NewSVGExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}
