package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentInput(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		column   int
		expected string
	}{
		{name: "empty line", line: "", column: 0, expected: ""},
		{name: "relative import", line: `import x from "./src/`, column: 21, expected: "./src/"},
		{name: "parent path", line: `require('../lib/ut`, column: 18, expected: "../lib/ut"},
		{name: "stops at quote", line: `"abc"`, column: 4, expected: "abc"},
		{name: "cursor mid line", line: `src="./img/logo.png" alt`, column: 11, expected: "./img/"},
		{name: "keeps spaces", line: `x = my file/`, column: 12, expected: " my file/"},
		{name: "column past end is clamped", line: "./a", column: 99, expected: "./a"},
		{name: "cursor after non path rune", line: "foo(", column: 4, expected: ""},
		{name: "plus and dash", line: "<c++-lib_2.h", column: 12, expected: "c++-lib_2.h"},
		{name: "multibyte before input", line: "ü./a", column: 4, expected: "./a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CurrentInput(tt.line, tt.column))
		})
	}
}

func TestParentDir(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "nested file", path: "/home/user/project/main.go", expected: "/home/user/project"},
		{name: "root file", path: "/main.go", expected: ""},
		{name: "no directory", path: "main.go", expected: ""},
		{name: "storage uri", path: "content://tree::/sdcard/app/index.js", expected: "content://tree::/sdcard/app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParentDir(tt.path))
		})
	}
}

func TestSplitInput(t *testing.T) {
	tests := []struct {
		input    string
		dir      string
		fragment string
	}{
		{input: "", dir: "", fragment: ""},
		{input: "file", dir: "", fragment: "file"},
		{input: "./", dir: "./", fragment: ""},
		{input: "./src/ma", dir: "./src/", fragment: "ma"},
		{input: "../../x", dir: "../../", fragment: "x"},
		{input: "/abs/dir/", dir: "/abs/dir/", fragment: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dir, fragment := SplitInput(tt.input)
			assert.Equal(t, tt.dir, dir)
			assert.Equal(t, tt.fragment, fragment)
		})
	}
}
