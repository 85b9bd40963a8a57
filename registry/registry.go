// Package registry implements the hierarchical object registry: a UNIX-style
// path tree in which a node may be a plain directory, may own an instance of
// a host-registered class, or may reference one of that instance's
// attributes or methods. It owns a class.Host for resolving class names and
// coerces/validates constructor and method arguments.
package registry

import (
	"sort"

	"github.com/joshuapare/shellkit/class"
)

// Registry is the path tree plus the class catalog it instantiates against.
// It is not safe for concurrent use: per spec.md §5, exactly one built-in
// command holds an exclusive mutable reference to it at a time.
type Registry struct {
	host   *class.Host
	nodes  map[nodeID]*node
	rootID nodeID
	nextID nodeID
}

// New returns a Registry with a single root node "/" and an empty class
// catalog.
func New() *Registry {
	r := &Registry{
		host:  class.NewHost(),
		nodes: make(map[nodeID]*node),
	}
	root := &node{
		id:       1,
		name:     "",
		children: make(map[string]nodeID),
		fullPath: "/",
	}
	r.nodes[root.id] = root
	r.rootID = root.id
	r.nextID = 2
	return r
}

// Host exposes the registry's class catalog directly, for callers (like
// demo.Register) that want to register a batch of descriptors without going
// through RegisterClass's per-call registry.Error translation.
func (r *Registry) Host() *class.Host { return r.host }

// RegisterClass adds a class descriptor to the registry's catalog, so that
// create commands can instantiate it by name or fq_name.
func (r *Registry) RegisterClass(d *class.Descriptor) error {
	if err := r.host.Register(d); err != nil {
		if cerr, ok := err.(*class.Error); ok {
			switch cerr.Kind {
			case class.ErrKindDuplicateClass:
				return &Error{Kind: ErrKindDuplicateClass, Msg: cerr.Msg, Class: cerr.Class}
			case class.ErrKindChildNameConflict:
				return &Error{Kind: ErrKindClassChildNameConflict, Msg: cerr.Msg, Class: cerr.Class, Path: cerr.Child}
			}
		}
		return errInternal("class registration failed", err)
	}
	return nil
}

func (r *Registry) newNode(parent *node, name string) *node {
	id := r.nextID
	r.nextID++
	fullPath := name
	if parent.fullPath != "/" {
		fullPath = parent.fullPath + "/" + name
	} else {
		fullPath = "/" + name
	}
	n := &node{
		id:        id,
		name:      name,
		parent:    parent.id,
		hasParent: true,
		children:  make(map[string]nodeID),
		fullPath:  fullPath,
	}
	r.nodes[id] = n
	parent.children[name] = id
	return n
}

func isReservedChildName(name string) bool {
	return name == "" || name == "." || name == ".."
}

// installParams bundles the fields create_path installs on its terminal
// node, uniformly across the mkdir / instance-install / child-materialize
// call shapes.
type installParams struct {
	instance *class.Instance
	owner    nodeID
	hasOwner bool
	attr     string
	hasAttr  bool
	method   string
	hasMethod bool
}

// createPath walks (creating missing segments as plain directories) from
// root along segment_list(pwd, cd), then installs params on the terminal
// node subject to the duplicate-path rule: installation is only allowed if a
// new node was created along the way, or failOnDuplicate is false and the
// terminal node was already a plain directory.
//
// If params carries an instance, createPath recurses once per class
// attribute and once per class method to materialize one level of
// attribute/method child nodes. An error during that materialization
// propagates even though the instance node itself is already installed —
// this is the one documented exception to the registry's otherwise total,
// transactional-per-call semantics.
func (r *Registry) createPath(pwd, cd string, failOnDuplicate bool, params installParams) (*node, *Error) {
	segs, err := segmentList(pwd, cd)
	if err != nil {
		return nil, err.(*Error)
	}

	cur := r.nodes[r.rootID]
	created := false
	for _, seg := range segs {
		if existing, ok := cur.children[seg]; ok {
			cur = r.nodes[existing]
			continue
		}
		if isReservedChildName(seg) {
			return nil, errInvalidPathChildName(cur.fullPath, seg, "illegal child name")
		}
		cur = r.newNode(cur, seg)
		created = true
	}

	allowed := created || (!failOnDuplicate && cur.isPlainDirectory())
	if !allowed {
		return nil, errDuplicatePath(cur.fullPath)
	}

	cur.instance = params.instance
	cur.owner, cur.hasOwner = params.owner, params.hasOwner
	cur.attr, cur.hasAttr = params.attr, params.hasAttr
	cur.method, cur.hasMethod = params.method, params.hasMethod

	if params.instance != nil {
		desc := params.instance.Descriptor()
		for attrName := range desc.Attributes {
			if _, aerr := r.createPath(cur.fullPath, attrName, true, installParams{
				owner: cur.id, hasOwner: true, attr: attrName, hasAttr: true,
			}); aerr != nil {
				return nil, aerr
			}
		}
		for methodName, m := range desc.Methods {
			childName := m.ChildName(methodName)
			if _, merr := r.createPath(cur.fullPath, childName, true, installParams{
				owner: cur.id, hasOwner: true, method: methodName, hasMethod: true,
			}); merr != nil {
				return nil, merr
			}
		}
	}

	return cur, nil
}

// Mkdir creates DIR and all missing parents as plain directories. Fails with
// DuplicatePath if the path already exists in any form.
func (r *Registry) Mkdir(pwd, cd string) error {
	_, err := r.createPath(pwd, cd, true, installParams{})
	return asErr(err)
}

// Cd navigates segment_list(pwd, cd) without creating anything, returning
// the canonical absolute path of the target node.
func (r *Registry) Cd(pwd, cd string) (string, error) {
	segs, serr := segmentList(pwd, cd)
	if serr != nil {
		return "", serr
	}
	cur := r.nodes[r.rootID]
	for _, seg := range segs {
		next, ok := cur.children[seg]
		if !ok {
			return "", errIllegalPathNavigation(pwd, cd, "unknown path")
		}
		cur = r.nodes[next]
	}
	return cur.fullPath, nil
}

// Path resolves pwd to its canonical form, equivalent to Cd(pwd, ".").
func (r *Registry) Path(pwd string) (string, error) {
	return r.Cd(pwd, ".")
}

func (r *Registry) navigate(pwd, cd string) (*node, *Error) {
	segs, err := segmentList(pwd, cd)
	if err != nil {
		return nil, err.(*Error)
	}
	cur := r.nodes[r.rootID]
	for _, seg := range segs {
		next, ok := cur.children[seg]
		if !ok {
			return nil, errIllegalPathNavigation(pwd, cd, "unknown path")
		}
		cur = r.nodes[next]
	}
	return cur, nil
}

// NodeKind classifies a registry node for rendering purposes, without
// forcing callers (like the TUI explorer) to re-parse a rendered ls line.
type NodeKind int

const (
	NodeKindDir NodeKind = iota
	NodeKindInstance
	NodeKindAttribute
	NodeKindMethod
)

func nodeKindOf(k kindLabel) NodeKind {
	switch k {
	case kindInstance:
		return NodeKindInstance
	case kindAttribute:
		return NodeKindAttribute
	case kindMethod:
		return NodeKindMethod
	default:
		return NodeKindDir
	}
}

// ListEntry is one rendered child line, as produced by Ls.
type ListEntry struct {
	Name        string
	Line        string
	Kind        NodeKind
	HasChildren bool
}

// Ls lists the direct children of DIR (or pwd), sorted ascending on the
// rendered line, matching the line formats in spec.md §6.
func (r *Registry) Ls(pwd, cd string) ([]ListEntry, error) {
	n, err := r.navigate(pwd, cd)
	if err != nil {
		return nil, err
	}
	entries := make([]ListEntry, 0, len(n.children))
	for name, id := range n.children {
		child := r.nodes[id]
		entries = append(entries, ListEntry{
			Name:        name,
			Line:        r.renderLsLine(name, child),
			Kind:        nodeKindOf(child.kind()),
			HasChildren: len(child.children) > 0,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Line < entries[j].Line })
	return entries, nil
}

func (r *Registry) renderLsLine(name string, n *node) string {
	switch n.kind() {
	case kindInstance:
		return name + " " + n.instance.Descriptor().Name
	case kindAttribute:
		owner := r.nodes[n.owner]
		return name + "+" + owner.instance.Descriptor().Name + "." + n.attr
	case kindMethod:
		owner := r.nodes[n.owner]
		m := owner.instance.Descriptor().Methods[n.method]
		return name + "! " + owner.instance.Descriptor().Name + "::" + n.method + "(" + joinParamTypes(m.ParamTypes) + ")"
	default:
		return name + "/"
	}
}

func joinParamTypes(types []string) string {
	out := ""
	for i, t := range types {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}

func asErr(e *Error) error {
	if e == nil {
		return nil
	}
	return e
}
