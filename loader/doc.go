// SPDX-License-Identifier: MIT

// Package loader reads road-system descriptions into core graphs and writes
// them back out.
//
// A description is an XML document whose root element (any name) holds node
// records:
//
//	<roadsystem>
//	  <node id="1" role="start"><link ref="2" weight="1"/></node>
//	  <node id="2" status="crashed"><link ref="3" weight="2.5"/></node>
//	  <node id="3" role="finish"/>
//	</roadsystem>
//
// Loading runs in two passes. The first creates every node, so links may
// reference nodes declared later in the document. The second validates and
// links every <link>. A link declared from both sides must carry the same
// weight on both. After linking, the graph must have at least two nodes, a
// Start node and a Finish node.
//
// Every failure is a *LoadError. Its Reason is the stable, user-facing text
// (see the Reason constants); its Kind groups reasons for callers that branch
// on the category. A failed load never returns a partially built graph.
package loader
