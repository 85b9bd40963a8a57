package registry

import "github.com/joshuapare/shellkit/class"

// nodeID is a process-wide stable identifier for a registry node.
type nodeID uint64

// node is one vertex of the path tree. The tree is represented as a flat
// id -> node map rather than a pointer graph with shared ownership, so that
// owner back-references (attribute/method nodes pointing at the
// instance-bearing node they derive from) are plain ids, not borrows.
type node struct {
	id       nodeID
	name     string
	parent   nodeID
	hasParent bool
	children map[string]nodeID
	fullPath string

	instance *class.Instance

	owner    nodeID
	hasOwner bool

	attr     string
	hasAttr  bool

	method    string
	hasMethod bool
}

// isPlainDirectory reports whether n carries none of the three special
// node-kind markers (instance, attribute, method).
func (n *node) isPlainDirectory() bool {
	return n.instance == nil && !n.hasAttr && !n.hasMethod
}

// kindLabel classifies n for ls rendering.
type kindLabel int

const (
	kindPlainDir kindLabel = iota
	kindInstance
	kindAttribute
	kindMethod
)

func (n *node) kind() kindLabel {
	switch {
	case n.instance != nil:
		return kindInstance
	case n.hasAttr:
		return kindAttribute
	case n.hasMethod:
		return kindMethod
	default:
		return kindPlainDir
	}
}
