// Package render formats completion suggestions for the terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI color codes
const (
	ColorCyan = lipgloss.Color("12") // Folders
	ColorGray = lipgloss.Color("8")  // Dim/secondary (kind, size)
	ColorRed  = lipgloss.Color("9")  // Error indicator
)

// Symbols
const (
	SymbolFolder = "▸"
	SymbolFile   = "•"
	SymbolError  = "✗"
)

// Style definitions using Lip Gloss
var (
	// FolderStyle is used for folder names
	FolderStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	FileStyle = lipgloss.NewStyle()

	// DimStyle is used for secondary information like kind and size
	DimStyle = lipgloss.NewStyle().Foreground(ColorGray)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed)
)
