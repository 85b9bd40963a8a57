package main

import (
	"strings"
	"testing"

	"github.com/joshuapare/shellkit/registry"
)

func TestDetailModelShowsDirectory(t *testing.T) {
	reg := newTestRegistry(t)
	d := newDetailModel()
	d.SetSize(80, 20)

	d.Show(reg, treeRow{path: "/widgets", kind: registry.NodeKindDir}, true)
	view := d.View()
	if !strings.Contains(view, "directory") {
		t.Errorf("expected directory kind in view, got %q", view)
	}
}

func TestDetailModelShowsAttributeValue(t *testing.T) {
	reg := newTestRegistry(t)
	d := newDetailModel()
	d.SetSize(80, 20)

	row := treeRow{path: "/widgets/w1/value", kind: registry.NodeKindAttribute}
	d.Show(reg, row, true)
	view := d.View()
	if !strings.Contains(view, "value: 0") {
		t.Errorf("expected rendered attribute value 0, got %q", view)
	}
}

func TestDetailModelShowsNothingSelected(t *testing.T) {
	d := newDetailModel()
	d.SetSize(80, 20)
	d.Show(nil, treeRow{}, false)
	if !strings.Contains(d.View(), "nothing selected") {
		t.Errorf("expected placeholder text, got %q", d.View())
	}
}

func TestDetailModelShowsInstanceMembers(t *testing.T) {
	reg := newTestRegistry(t)
	d := newDetailModel()
	d.SetSize(80, 20)

	row := treeRow{path: "/widgets/w1", kind: registry.NodeKindInstance}
	d.Show(reg, row, true)
	view := d.View()
	if !strings.Contains(view, "members:") {
		t.Errorf("expected members listing, got %q", view)
	}
}
