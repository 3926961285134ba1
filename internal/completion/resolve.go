package completion

import (
	"strings"

	"github.com/atinylittleshell/pathintel/internal/filesystem"
)

// ResolvePath resolves rel against the directory base and returns a canonical
// directory key ending in a slash.
//
// The segments of rel are walked over base: ".." moves up one directory and
// "." and empty segments are skipped. A rel starting with "/" is rooted at
// base, so ".." never climbs above it; otherwise ".." stops at the file system
// root. A base of the form "<uri>::<dir>" keeps its storage URI and only the
// directory part is walked.
func ResolvePath(base, rel string) string {
	uri, dir, hasURI := strings.Cut(base, filesystem.URISeparator)
	if !hasURI {
		uri, dir = "", base
	}

	dir = withTrailingSlash(dir)
	floor := 0
	if strings.HasPrefix(rel, "/") {
		floor = len(dir)
	}
	dir = walk(dir, rel, floor)

	if hasURI {
		return uri + filesystem.URISeparator + dir
	}
	return dir
}

// walk applies the segments of rel to dir. dir is never shortened below floor bytes.
func walk(dir, rel string, floor int) string {
	for _, part := range strings.Split(rel, "/") {
		switch part {
		case "", ".":
		case "..":
			if idx := strings.LastIndex(dir[:len(dir)-1], "/"); idx != -1 && idx+1 >= floor {
				dir = dir[:idx+1]
			}
		default:
			dir += part + "/"
		}
	}
	return dir
}

func withTrailingSlash(dir string) string {
	if strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}
