package completion

import (
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// suggestionSource implements fuzzy.Source over suggestion captions.
type suggestionSource []Suggestion

func (s suggestionSource) String(i int) string { return s[i].Caption }
func (s suggestionSource) Len() int            { return len(s) }

// filterByFragment keeps the suggestions whose caption fuzzy-matches fragment,
// best match first. An empty fragment keeps everything in listing order.
func filterByFragment(suggestions []Suggestion, fragment string) []Suggestion {
	if fragment == "" {
		return suggestions
	}

	matches := fuzzy.FindFrom(fragment, suggestionSource(suggestions))
	return lo.Map(matches, func(m fuzzy.Match, _ int) Suggestion {
		return suggestions[m.Index]
	})
}
