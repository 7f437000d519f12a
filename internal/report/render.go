// internal/report/render.go
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const (
	borderWidth = 75
	labelWidth  = 40
)

// ValidFormat reports whether f is a known output format
func ValidFormat(f string) bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Options controls rendering
type Options struct {
	Format string
	Color  bool // text only; still off when stdout is not a terminal
}

// Render writes doc to w in the requested format
func Render(w io.Writer, doc *Document, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return renderText(w, doc, opts.Color)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func renderText(w io.Writer, doc *Document, useColor bool) error {
	header := color.New(color.FgCyan, color.Bold)
	if !useColor {
		header.DisableColor()
	}

	bw := bufio.NewWriter(w)
	line := func(label string, value any) {
		fmt.Fprintf(bw, "%-*s %v\n", labelWidth, label, value)
	}

	fmt.Fprintln(bw)
	for _, dev := range doc.Devices {
		header.Fprintln(bw, strings.Repeat("=", borderWidth))
		header.Fprintf(bw, "%-*s %s\n", labelWidth, "Device Path:", dev.DevicePath)

		for _, f := range dev.Enrichment.Fields() {
			line(f.Label, f.Value)
		}

		fmt.Fprintf(bw, "%-*s %d\n\n", labelWidth, "Total ereports:", dev.Total)
		line("class", "# occurences")
		line("-----", "------------")
		for _, c := range dev.Classes {
			line(c.Class, c.Count)
		}

		fmt.Fprintln(bw, "\nEvent Occurrence Distribution")
		fmt.Fprintln(bw, "-----------------------------")
		for _, d := range dev.Days {
			line(d.Day, d.Count)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}
