package completion

import (
	"path"
	"strings"
)

const defaultFileIcon = "file file_type_default"

// fileTypesByName covers files recognised by their full name.
var fileTypesByName = map[string]string{
	"dockerfile":   "docker",
	"makefile":     "makefile",
	"package.json": "npm",
	"go.mod":       "go_mod",
	"go.sum":       "go_mod",
	".gitignore":   "git",
	".env":         "dotenv",
}

// fileTypesByExt maps a lower-case extension without the dot to an icon type.
var fileTypesByExt = map[string]string{
	"c":    "c",
	"cpp":  "cpp",
	"cs":   "csharp",
	"css":  "css",
	"go":   "go",
	"h":    "c",
	"htm":  "html",
	"html": "html",
	"java": "java",
	"jpeg": "image",
	"jpg":  "image",
	"js":   "javascript",
	"json": "json",
	"jsx":  "reactjs",
	"kt":   "kotlin",
	"md":   "markdown",
	"php":  "php",
	"png":  "image",
	"py":   "python",
	"rb":   "ruby",
	"rs":   "rust",
	"scss": "scss",
	"sh":   "shell",
	"sql":  "sql",
	"svg":  "svg",
	"toml": "toml",
	"ts":   "typescript",
	"tsx":  "reactts",
	"txt":  "text",
	"vue":  "vue",
	"xml":  "xml",
	"yaml": "yaml",
	"yml":  "yaml",
}

// IconForFile returns the icon class for a file name.
func IconForFile(name string) string {
	lower := strings.ToLower(name)
	if t, ok := fileTypesByName[lower]; ok {
		return "file file_type_" + t
	}

	ext := strings.TrimPrefix(path.Ext(lower), ".")
	if t, ok := fileTypesByExt[ext]; ok {
		return "file file_type_" + t
	}
	return defaultFileIcon
}
