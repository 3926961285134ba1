package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/atinylittleshell/pathintel/internal/completion"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Suggestions writes one line per suggestion. Styled output aligns columns and
// colors folders; plain output is tab separated for scripts.
func Suggestions(w io.Writer, suggestions []completion.Suggestion, styled bool) error {
	if !styled {
		for _, s := range suggestions {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", s.Value, s.Meta, sizeText(s)); err != nil {
				return err
			}
		}
		return nil
	}

	width := 0
	for _, s := range suggestions {
		width = max(width, lipgloss.Width(s.Value))
	}

	for _, s := range suggestions {
		symbol, name := SymbolFile, FileStyle.Render(s.Value)
		if s.IsFolder() {
			symbol, name = SymbolFolder, FolderStyle.Render(s.Value)
		}
		padding := strings.Repeat(" ", width-lipgloss.Width(s.Value))

		meta := string(s.Meta)
		if size := sizeText(s); size != "" {
			meta += "  " + size
		}

		line := fmt.Sprintf("%s %s%s  %s\n", symbol, name, padding, DimStyle.Render(meta))
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Error writes a styled error line.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render(SymbolError), err)
}

func sizeText(s completion.Suggestion) string {
	if s.IsFolder() {
		return ""
	}
	return humanize.Bytes(uint64(s.Size))
}
