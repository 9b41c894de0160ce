// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadpath/core"
)

const crashedStatus = "crashed"

// xmlRoadSystem is the document root. Its element name is not checked.
type xmlRoadSystem struct {
	XMLName xml.Name
	Nodes   []xmlNode `xml:"node"`
}

// Pointer attributes distinguish "absent" from "empty".
type xmlNode struct {
	ID     *string   `xml:"id,attr"`
	Role   *string   `xml:"role,attr,omitempty"`
	Status *string   `xml:"status,attr,omitempty"`
	Links  []xmlLink `xml:"link"`
}

type xmlLink struct {
	Ref    *string `xml:"ref,attr"`
	Weight *string `xml:"weight,attr"`
}

// LoadFromText parses a description held in memory.
func LoadFromText(content string) (*core.Graph, error) {
	return LoadFromReader(strings.NewReader(content))
}

// LoadFromReader parses a description read from r.
func LoadFromReader(r io.Reader) (*core.Graph, error) {
	var doc xmlRoadSystem
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, newError(KindSyntax, ReasonLoad, err)
	}
	if err := expectEOF(dec); err != nil {
		return nil, newError(KindSyntax, ReasonLoad, err)
	}

	g, lerr := build(&doc)
	if lerr != nil {
		return nil, lerr
	}

	return g, nil
}

// expectEOF drains dec after the root element. Only whitespace, comments
// and processing instructions may follow it.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return fmt.Errorf("text after root element: %q", bytes.TrimSpace(t))
			}
		case xml.StartElement:
			return fmt.Errorf("second root element <%s>", t.Name.Local)
		default:
			return fmt.Errorf("unexpected %T after root element", tok)
		}
	}
}

// LoadFromPath reads the file at path and parses it. I/O failures are
// reported as "Error while loading <file name>". Every returned *LoadError
// carries path as its Source.
func LoadFromPath(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		le := newError(KindIO, ioReason(filepath.Base(path)), err)
		le.Source = path
		return nil, le
	}

	g, err := LoadFromReader(bytes.NewReader(data))
	if err != nil {
		if le, ok := AsLoadError(err); ok {
			le.Source = path
		}
		return nil, err
	}

	return g, nil
}

// build runs both passes and the final count checks over a decoded document.
func build(doc *xmlRoadSystem) (*core.Graph, *LoadError) {
	g := core.NewGraph()

	nodes := make([]*core.Node, len(doc.Nodes))
	for i := range doc.Nodes {
		n, err := createNode(g, &doc.Nodes[i])
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}

	for i := range doc.Nodes {
		for j := range doc.Nodes[i].Links {
			if err := linkNode(g, nodes[i], &doc.Nodes[i].Links[j]); err != nil {
				return nil, err
			}
		}
	}

	if err := checkCounts(g); err != nil {
		return nil, err
	}

	return g, nil
}

// createNode is pass one for a single record.
func createNode(g *core.Graph, rec *xmlNode) (*core.Node, *LoadError) {
	if rec.ID == nil || strings.TrimSpace(*rec.ID) == "" {
		return nil, newError(KindStructure, ReasonNodeWithoutID, nil)
	}
	id, err := strconv.Atoi(strings.TrimSpace(*rec.ID))
	if err != nil {
		return nil, newError(KindStructure, ReasonNodeInvalidID, err)
	}

	var opts []core.NodeOption
	if rec.Status != nil && strings.EqualFold(strings.TrimSpace(*rec.Status), crashedStatus) {
		opts = append(opts, core.WithDisabled())
	}
	if rec.Role != nil {
		opts = append(opts, core.WithRole(core.ParseRole(*rec.Role)))
	}

	n, err := g.CreateNode(id, opts...)
	if err != nil {
		return nil, newError(KindStructure, ReasonLoad, err)
	}

	return n, nil
}

// linkNode is pass two for a single link record declared under from.
func linkNode(g *core.Graph, from *core.Node, rec *xmlLink) *LoadError {
	if rec.Weight == nil {
		return newError(KindReference, ReasonLinkNoWeight, nil)
	}
	if rec.Ref == nil {
		return newError(KindReference, ReasonLinkNoRef, nil)
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(*rec.Weight), 64)
	if err != nil {
		return newError(KindReference, ReasonLinkBadWeight, err)
	}
	if !core.ValidWeight(weight) {
		return newError(KindReference, ReasonLinkBadWeight, fmt.Errorf("weight %v", weight))
	}

	ref, err := strconv.Atoi(strings.TrimSpace(*rec.Ref))
	if err != nil {
		return newError(KindReference, ReasonLinkBadRef, err)
	}
	to, ok := g.Lookup(ref)
	if !ok {
		return newError(KindReference, ReasonLinkUnknownNode, fmt.Errorf("node %d links to %d", from.ID(), ref))
	}

	if from.IsLinkedTo(to) {
		if prev := from.Edges().Weight(to); prev != weight {
			return newError(KindConsistency, ReasonWeightMismatch,
				fmt.Errorf("nodes %d and %d: %v vs %v", from.ID(), to.ID(), prev, weight))
		}
		return nil
	}

	if err = g.Link(from, to, weight); err != nil {
		return newError(KindStructure, ReasonLoad, err)
	}

	return nil
}

// checkCounts enforces the post-load requirements in a fixed order.
func checkCounts(g *core.Graph) *LoadError {
	switch g.NodeCount() {
	case 0:
		return newError(KindCount, ReasonNoNode, nil)
	case 1:
		return newError(KindCount, ReasonSingleNode, nil)
	}
	if _, ok := g.Start(); !ok {
		return newError(KindCount, ReasonNoStart, nil)
	}
	if _, ok := g.Finish(); !ok {
		return newError(KindCount, ReasonNoFinish, nil)
	}

	return nil
}
