// SPDX-License-Identifier: MIT

package loader

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/roadpath/core"
)

const rootElement = "roadsystem"

// Encode writes g as a description that LoadFromText reads back into an
// equivalent graph. Nodes appear in ascending ID order; each link is written
// from both of its ends, neighbors in ascending ID order.
func Encode(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("loader: encode: nil graph")
	}

	doc := xmlRoadSystem{XMLName: xml.Name{Local: rootElement}}
	for _, n := range g.Nodes() {
		id := strconv.Itoa(n.ID())
		rec := xmlNode{ID: &id}
		if n.Role() != core.Normal {
			role := n.Role().String()
			rec.Role = &role
		}
		if n.Disabled() {
			status := crashedStatus
			rec.Status = &status
		}
		for _, nb := range n.Edges().Neighbors() {
			ref := strconv.Itoa(nb.Node.ID())
			weight := strconv.FormatFloat(nb.Weight, 'g', -1, 64)
			rec.Links = append(rec.Links, xmlLink{Ref: &ref, Weight: &weight})
		}
		doc.Nodes = append(doc.Nodes, rec)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("loader: encode: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("loader: encode: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("loader: encode: %w", err)
	}

	return nil
}
