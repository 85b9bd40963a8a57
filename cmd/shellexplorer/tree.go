package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/shellkit/registry"
)

// treeRow is one visible line of the flattened registry tree: a path at a
// given depth, expanded or not.
type treeRow struct {
	path     string
	name     string
	depth    int
	kind     registry.NodeKind
	expanded bool
	leaf     bool // true when kind has no children to expand into
}

// treeModel renders the registry as an expandable tree in the left pane,
// adapted from the teacher's keytree component but condensed to a single
// file: one flattened row slice recomputed from the registry on every
// structural change, rather than a cached navigator/cursor pair.
type treeModel struct {
	reg      *registry.Registry
	expanded map[string]bool
	rows     []treeRow
	cursor   int
	width    int
	height   int
}

func newTreeModel(reg *registry.Registry) *treeModel {
	t := &treeModel{
		reg:      reg,
		expanded: map[string]bool{"/": true},
	}
	t.Refresh()
	return t
}

// Refresh rebuilds the flattened row list from the registry's current state.
// Call it after any command execution that may have mutated the tree.
func (t *treeModel) Refresh() {
	t.rows = t.rows[:0]
	t.walk("/", 0)
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *treeModel) walk(path string, depth int) {
	entries, err := t.reg.Ls("/", path)
	if err != nil {
		return
	}
	for _, e := range entries {
		childPath := joinTreePath(path, e.Name)
		expanded := t.expanded[childPath]
		leaf := !e.HasChildren
		t.rows = append(t.rows, treeRow{
			path:     childPath,
			name:     e.Name,
			depth:    depth,
			kind:     e.Kind,
			expanded: expanded,
			leaf:     leaf,
		})
		if expanded && !leaf {
			t.walk(childPath, depth+1)
		}
	}
}

func joinTreePath(parent, name string) string {
	if parent == "/" {
		return "/" + name
	}
	return parent + "/" + name
}

func (t *treeModel) Selected() (treeRow, bool) {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return treeRow{}, false
	}
	return t.rows[t.cursor], true
}

func (t *treeModel) SetSize(w, h int) {
	t.width, t.height = w, h
}

func (t *treeModel) Update(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.rows)-1 {
			t.cursor++
		}
	case "right", "l", "enter":
		if row, ok := t.Selected(); ok && !row.leaf {
			t.expanded[row.path] = true
			t.Refresh()
		}
	case "left", "h":
		if row, ok := t.Selected(); ok {
			if t.expanded[row.path] {
				t.expanded[row.path] = false
				t.Refresh()
			} else if idx := t.parentRowIndex(row.depth); idx >= 0 {
				t.cursor = idx
			}
		}
	}
}

func (t *treeModel) parentRowIndex(childDepth int) int {
	for i := t.cursor - 1; i >= 0; i-- {
		if t.rows[i].depth < childDepth {
			return i
		}
	}
	return -1
}

func (t *treeModel) View() string {
	var b strings.Builder
	top := 0
	visible := t.height
	if visible <= 0 {
		visible = len(t.rows)
	}
	if t.cursor >= visible {
		top = t.cursor - visible + 1
	}
	for i := top; i < len(t.rows) && i < top+visible; i++ {
		row := t.rows[i]
		indent := strings.Repeat("  ", row.depth)
		marker := " "
		if !row.leaf {
			if row.expanded {
				marker = "-"
			} else {
				marker = "+"
			}
		}
		line := fmt.Sprintf("%s%s %s", indent, marker, treeRowLabel(row))
		if i == t.cursor {
			line = selectedRowStyle.Render(line)
		} else {
			line = treeRowStyleFor(row.kind).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func treeRowLabel(row treeRow) string {
	switch row.kind {
	case registry.NodeKindInstance:
		return row.name + "/"
	case registry.NodeKindAttribute:
		return row.name
	case registry.NodeKindMethod:
		return row.name + "()"
	default:
		return row.name + "/"
	}
}
