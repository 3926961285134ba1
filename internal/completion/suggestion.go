// Package completion computes path completion suggestions for an editor.
// It parses the path being typed at the cursor, resolves it against the
// active file's directory and lists that directory, keeping recent listings
// in a bounded LRU cache so that each keystroke does not hit the disk.
package completion

import (
	"github.com/samber/lo"

	"github.com/atinylittleshell/pathintel/internal/filesystem"
)

// Kind tags a suggestion as a file or a folder.
type Kind string

const (
	KindFile   Kind = "File"
	KindFolder Kind = "Folder"
)

// FolderIcon is the icon class used for folders when icons are enabled.
const FolderIcon = "icon folder"

// Suggestion is a single completion offered to the editor.
type Suggestion struct {
	Caption string `json:"caption"`
	Value   string `json:"value"`
	Score   int    `json:"score"`
	Meta    Kind   `json:"meta"`
	Icon    string `json:"icon,omitempty"`
	Size    int64  `json:"size,omitempty"`
}

// IsFolder reports whether the suggestion names a directory.
func (s Suggestion) IsFolder() bool {
	return s.Meta == KindFolder
}

// newSuggestion converts a listing entry. Folders complete with a trailing slash.
func newSuggestion(entry filesystem.Entry, icons bool) Suggestion {
	s := Suggestion{
		Caption: entry.Name,
		Value:   entry.Name,
		Meta:    KindFile,
		Size:    entry.Size,
	}
	if !entry.IsFile {
		s.Value += "/"
		s.Meta = KindFolder
		s.Size = 0
	}
	if icons {
		if entry.IsFile {
			s.Icon = IconForFile(entry.Name)
		} else {
			s.Icon = FolderIcon
		}
	}
	return s
}

// withScore returns a copy of suggestions carrying the given score.
func withScore(suggestions []Suggestion, score int) []Suggestion {
	return lo.Map(suggestions, func(s Suggestion, _ int) Suggestion {
		s.Score = score
		return s
	})
}
