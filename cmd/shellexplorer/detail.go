package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/shellkit/registry"
	"github.com/joshuapare/shellkit/shell"
)

// detailModel shows the tree pane's current selection: the live serialized
// value of an attribute row, a usage hint for a method row, or the ls lines
// (with method signatures) of an instance row, condensed from the teacher's valuedetail pane into a single
// always-visible viewport rather than a modal overlay.
type detailModel struct {
	reg      *registry.Registry
	viewport viewport.Model
}

func newDetailModel() *detailModel {
	return &detailModel{viewport: viewport.New(0, 0)}
}

func (d *detailModel) SetSize(w, h int) {
	d.viewport.Width = w
	d.viewport.Height = h
}

func (d *detailModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return cmd
}

// Show renders details for the row at path, reading the live value off reg
// when row is an attribute.
func (d *detailModel) Show(reg *registry.Registry, row treeRow, ok bool) {
	d.reg = reg
	if !ok {
		d.viewport.SetContent("(nothing selected)")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "path:  %s\n", row.path)
	fmt.Fprintf(&b, "kind:  %s\n\n", kindName(row.kind))

	switch row.kind {
	case registry.NodeKindAttribute:
		v, err := reg.Attr("/", row.path)
		if err != nil {
			fmt.Fprintf(&b, "error reading attribute: %v\n", err)
			break
		}
		fmt.Fprintf(&b, "value: %s\n", shell.FormatValue(v))
	case registry.NodeKindMethod:
		fmt.Fprintln(&b, "invoke from the command line below, e.g.:")
		fmt.Fprintf(&b, "  %s <args...>\n", row.path)
	case registry.NodeKindInstance:
		entries, err := reg.Ls("/", row.path)
		if err == nil {
			fmt.Fprintln(&b, "members:")
			for _, e := range entries {
				fmt.Fprintf(&b, "  %s\n", e.Line)
			}
		}
	default:
		fmt.Fprintln(&b, "directory")
	}

	d.viewport.SetContent(b.String())
}

func (d *detailModel) View() string {
	return d.viewport.View()
}

func kindName(k registry.NodeKind) string {
	switch k {
	case registry.NodeKindInstance:
		return "instance"
	case registry.NodeKindAttribute:
		return "attribute"
	case registry.NodeKindMethod:
		return "method"
	default:
		return "directory"
	}
}
