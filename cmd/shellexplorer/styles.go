package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/shellkit/registry"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("62"))

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("62")).
				Foreground(lipgloss.Color("230"))

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	instanceRowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	attributeRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("228"))
	methodRowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	dirRowStyle       = lipgloss.NewStyle()
)

func treeRowStyleFor(k registry.NodeKind) lipgloss.Style {
	switch k {
	case registry.NodeKindInstance:
		return instanceRowStyle
	case registry.NodeKindAttribute:
		return attributeRowStyle
	case registry.NodeKindMethod:
		return methodRowStyle
	default:
		return dirRowStyle
	}
}
