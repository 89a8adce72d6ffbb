package sim

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/automoto/dobok"

// The simulation and CLI run without a display, so nothing they link may
// pull in the engine.
func TestHeadlessPackagesDoNotImportEbiten(t *testing.T) {
	for _, pkg := range []string{
		"config", "components", "archetypes", "tags", "session", "level",
		"systems", "systems/factory", "sim", "cmd/combosim",
	} {
		t.Run(pkg, func(t *testing.T) {
			chain := ebitenChain(t, pkg, map[string]bool{})
			assert.Empty(t, chain, "import chain reaches ebiten: %s", strings.Join(chain, " -> "))
		})
	}
}

func TestEbitenChainFindsRenderPackage(t *testing.T) {
	chain := ebitenChain(t, "systems/render", map[string]bool{})
	require.NotEmpty(t, chain)
	assert.Equal(t, "systems/render", chain[0])
}

// ebitenChain follows module-local imports from pkg and returns the path to
// the first ebiten import, or nil.
func ebitenChain(t *testing.T, pkg string, seen map[string]bool) []string {
	t.Helper()
	if seen[pkg] {
		return nil
	}
	seen[pkg] = true

	files, err := filepath.Glob(filepath.Join("..", filepath.FromSlash(pkg), "*.go"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no sources for %s", pkg)

	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		require.NoError(t, err)
		for _, imp := range file.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)
			switch {
			case strings.HasPrefix(path, "github.com/hajimehoshi/ebiten"):
				return []string{pkg, path}
			case strings.HasPrefix(path, modulePath+"/"):
				if chain := ebitenChain(t, strings.TrimPrefix(path, modulePath+"/"), seen); chain != nil {
					return append([]string{pkg}, chain...)
				}
			}
		}
	}
	return nil
}
