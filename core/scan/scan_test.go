package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<p>x</p>"), 0o644))
}

func TestHTMLFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html")
	writeFile(t, root, "guides/intro.htm")
	writeFile(t, root, "guides/deep/ref.html")
	writeFile(t, root, "styles/site.css")
	writeFile(t, root, "notes.txt")

	files, err := HTMLFiles(root)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join("guides", "deep", "ref.html"),
		filepath.Join("guides", "intro.htm"),
		"index.html",
	}, files)
}

func TestHTMLFilesEmptyTree(t *testing.T) {
	files, err := HTMLFiles(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestHTMLFilesMissingRoot(t *testing.T) {
	_, err := HTMLFiles(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestIsHTMLFile(t *testing.T) {
	require.True(t, IsHTMLFile("a/b/page.html"))
	require.True(t, IsHTMLFile("PAGE.HTML"))
	require.True(t, IsHTMLFile("page.xhtml"))
	require.False(t, IsHTMLFile("page.css"))
	require.False(t, IsHTMLFile("page"))
}
