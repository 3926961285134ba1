package completion

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/atinylittleshell/pathintel/internal/filesystem"
	"github.com/atinylittleshell/pathintel/internal/lrucache"
)

// Scores given to suggestions. Explicit path inputs rank far above plain words
// so that path suggestions win over the editor's keyword completions.
const (
	DefaultNormalScore = 500
	DefaultPathScore   = 8000
)

// DefaultWarmConcurrency bounds concurrent listings during Warm.
const DefaultWarmConcurrency = 4

// Options configures a Completer.
type Options struct {
	// CacheCapacity is the number of directory listings kept in memory.
	CacheCapacity int
	NormalScore   int
	PathScore     int
	// RootDir, when set, is the base for inputs starting with "/".
	// Otherwise such inputs are resolved against the active file's directory.
	RootDir         string
	ShowHidden      bool
	Icons           bool
	WarmConcurrency int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		CacheCapacity:   lrucache.DefaultCapacity,
		NormalScore:     DefaultNormalScore,
		PathScore:       DefaultPathScore,
		ShowHidden:      true,
		WarmConcurrency: DefaultWarmConcurrency,
	}
}

// Request describes the cursor position in the active document.
type Request struct {
	Line    string `json:"line"`
	Column  int    `json:"column"`
	FileURI string `json:"fileUri"`
}

// Stats is a snapshot of the completer's cache usage.
type Stats struct {
	Entries  int   `json:"entries"`
	Capacity int   `json:"capacity"`
	Hits     int64 `json:"hits"`
	Misses   int64 `json:"misses"`
	Failures int64 `json:"failures"`
}

// Completer turns cursor positions into path suggestions.
// It owns a bounded cache of directory listings keyed by canonical directory.
type Completer struct {
	lister filesystem.Lister
	logger *zap.Logger
	opts   Options

	cache    *lrucache.Cache[string, []Suggestion]
	listings singleflight.Group

	hits     atomic.Int64
	misses   atomic.Int64
	failures atomic.Int64
}

// NewCompleter creates a Completer listing directories with lister.
func NewCompleter(lister filesystem.Lister, logger *zap.Logger, opts Options) (*Completer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cache, err := lrucache.New(opts.CacheCapacity, lrucache.WithEvictCallback(func(dir string, _ []Suggestion) {
		logger.Debug("evicted directory listing", zap.String("dir", dir))
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create directory cache: %w", err)
	}

	return &Completer{
		lister: lister,
		logger: logger,
		opts:   opts,
		cache:  cache,
	}, nil
}

// query is a resolved completion request.
type query struct {
	dir      string
	fragment string
	score    int
}

// Complete returns suggestions for the path being typed in req.
// Listing failures are logged and yield no suggestions.
func (c *Completer) Complete(ctx context.Context, req Request) []Suggestion {
	if req.FileURI == "" {
		return []Suggestion{}
	}

	input := strings.TrimLeftFunc(CurrentInput(req.Line, req.Column), unicode.IsSpace)
	q := c.route(activeDir(req.FileURI), input)

	suggestions, err := c.directoryContents(ctx, q.dir)
	if err != nil {
		c.logger.Warn("failed to list directory for completion",
			zap.String("dir", q.dir),
			zap.Error(err))
		return []Suggestion{}
	}

	return withScore(filterByFragment(suggestions, q.fragment), q.score)
}

// route decides which directory to list for input typed in a file under currentDir.
func (c *Completer) route(currentDir, input string) query {
	switch {
	case strings.HasPrefix(input, "/"):
		base := currentDir
		if c.opts.RootDir != "" {
			base = c.opts.RootDir
		}
		dir, fragment := SplitInput(input)
		return query{dir: ResolvePath(base, dir), fragment: fragment, score: c.opts.PathScore}
	case strings.HasPrefix(input, "../"):
		dir, fragment := SplitInput(input)
		return query{dir: ResolvePath(currentDir, dir), fragment: fragment, score: c.opts.PathScore}
	case strings.HasPrefix(input, "./"):
		dir, fragment := SplitInput(input)
		return query{dir: ResolvePath(currentDir, strings.TrimPrefix(dir, "./")), fragment: fragment, score: c.opts.PathScore}
	default:
		word := input
		if idx := strings.LastIndexFunc(input, unicode.IsSpace); idx >= 0 {
			word = input[idx+1:]
		}
		dir, fragment := SplitInput(word)
		return query{dir: ResolvePath(currentDir, dir), fragment: fragment, score: c.opts.NormalScore}
	}
}

// directoryContents returns the suggestions for dir, from the cache when possible.
// Only successful listings are cached.
func (c *Completer) directoryContents(ctx context.Context, dir string) ([]Suggestion, error) {
	if cached, ok := c.cache.Get(dir); ok {
		c.hits.Add(1)
		c.logger.Debug("directory cache hit", zap.String("dir", dir))
		return cached, nil
	}
	c.misses.Add(1)

	v, err, shared := c.listings.Do(dir, func() (interface{}, error) {
		entries, err := c.lister.List(ctx, dir)
		if err != nil {
			return nil, err
		}
		suggestions := c.toSuggestions(entries)
		c.cache.Set(dir, suggestions)
		return suggestions, nil
	})
	if err != nil {
		c.failures.Add(1)
		return nil, err
	}

	c.logger.Debug("listed directory",
		zap.String("dir", dir),
		zap.Bool("shared", shared))
	return v.([]Suggestion), nil
}

func (c *Completer) toSuggestions(entries []filesystem.Entry) []Suggestion {
	if !c.opts.ShowHidden {
		entries = lo.Filter(entries, func(e filesystem.Entry, _ int) bool {
			return !strings.HasPrefix(e.Name, ".")
		})
	}
	return lo.Map(entries, func(e filesystem.Entry, _ int) Suggestion {
		return newSuggestion(e, c.opts.Icons)
	})
}

// Warm lists dirs ahead of time so that the first completion in them is
// served from the cache. Directories already cached are skipped and failures
// are only logged.
func (c *Completer) Warm(ctx context.Context, dirs ...string) {
	g, ctx := errgroup.WithContext(ctx)
	if c.opts.WarmConcurrency > 0 {
		g.SetLimit(c.opts.WarmConcurrency)
	}

	canonical := lo.Uniq(lo.Map(dirs, func(dir string, _ int) string {
		return ResolvePath(dir, "")
	}))
	for _, dir := range canonical {
		dir := dir
		g.Go(func() error {
			if c.cache.Contains(dir) {
				return nil
			}
			if _, err := c.directoryContents(ctx, dir); err != nil {
				c.logger.Warn("failed to warm directory", zap.String("dir", dir), zap.Error(err))
			}
			return nil
		})
	}

	_ = g.Wait()
}

// WarmFile warms the directory containing fileURI.
func (c *Completer) WarmFile(ctx context.Context, fileURI string) {
	if fileURI == "" {
		return
	}
	c.Warm(ctx, activeDir(fileURI))
}

// Stats returns a snapshot of cache usage.
func (c *Completer) Stats() Stats {
	return Stats{
		Entries:  c.cache.Len(),
		Capacity: c.cache.Cap(),
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Failures: c.failures.Load(),
	}
}

// CachedDirs returns the cached directories from most to least recently used.
func (c *Completer) CachedDirs() []string {
	return c.cache.Keys()
}

// activeDir returns the directory of the active file, "." when it has none.
func activeDir(fileURI string) string {
	if dir := ParentDir(fileURI); dir != "" || strings.HasPrefix(fileURI, "/") {
		return dir
	}
	return "."
}
