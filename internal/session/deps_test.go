package session

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// The session package is shared by every frontend and must build without
// the sqlite driver or any toolkit.
func TestSessionImportsStayPure(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}

	forbidden := []string{
		"github.com/vovakirdan/atomviz/internal/storage",
		"github.com/vovakirdan/atomviz/internal/platform",
		"modernc.org/sqlite",
		"github.com/charmbracelet/bubbletea",
		"github.com/hajimehoshi/ebiten",
	}

	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			for _, bad := range forbidden {
				if strings.HasPrefix(path, bad) {
					t.Errorf("%s imports %s", name, path)
				}
			}
		}
	}
}
