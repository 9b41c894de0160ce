// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
)

// Kind classifies a load failure.
type Kind int

const (
	// KindSyntax is a malformed document.
	KindSyntax Kind = iota + 1
	// KindStructure is a bad node record or a graph rule violation.
	KindStructure
	// KindReference is a bad link record.
	KindReference
	// KindConsistency is a link redeclared with a different weight.
	KindConsistency
	// KindCount is a graph without enough nodes or without endpoints.
	KindCount
	// KindIO is a failure to read the source.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindStructure:
		return "structure"
	case KindReference:
		return "reference"
	case KindConsistency:
		return "consistency"
	case KindCount:
		return "count"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Reasons reported by LoadError. Callers render them verbatim.
const (
	ReasonLoad            = "Error while loading road system"
	ReasonNodeWithoutID   = "Node without ID"
	ReasonNodeInvalidID   = "Node with invalid ID. ID should be a number"
	ReasonLinkNoWeight    = "Link does not have weight attribute"
	ReasonLinkNoRef       = "Link does not have ref attribute"
	ReasonLinkBadWeight   = "Link with invalid weight"
	ReasonLinkBadRef      = "Link with invalid ref ID"
	ReasonLinkUnknownNode = "Link points to non-existing node"
	ReasonWeightMismatch  = "Different weight between 2 nodes is not allowed"
	ReasonNoNode          = "No node found"
	ReasonSingleNode      = "There only 1 node in the road system"
	ReasonNoStart         = "No Start node found"
	ReasonNoFinish        = "No End node found"
)

// LoadError reports why a description could not be loaded.
type LoadError struct {
	Kind   Kind
	Reason string
	// Source names the description (file path), empty for in-memory text.
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func newError(kind Kind, reason string, cause error) *LoadError {
	return &LoadError{Kind: kind, Reason: reason, Err: cause}
}

// AsLoadError unwraps err into a *LoadError.
func AsLoadError(err error) (*LoadError, bool) {
	var le *LoadError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}

// ioReason is the reason reported when name cannot be read.
func ioReason(name string) string {
	return "Error while loading " + name
}
