package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFlat(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.WriteFlat("https://docs.example.com/guides/intro.html", []byte("= Intro\n"), ".adoc")
	require.NoError(t, err)
	require.Equal(t, "docs_example_com_guides_intro.adoc", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "= Intro\n", string(data))
}

func TestWriteFlatLocalPath(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.WriteFlat(filepath.Join("docs", "intro.html"), []byte("x"), ".adoc")
	require.NoError(t, err)
	require.Equal(t, "intro.adoc", filepath.Base(path))
}

func TestWriteRelative(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.WriteRelative(filepath.Join("guides", "intro.html"), []byte("= Intro\n"), ".adoc")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "guides", "intro.adoc"), path)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestWriteTree(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	tests := []struct {
		url  string
		want string
	}{
		{"https://site.com/docs/intro.html", filepath.Join(dir, "docs", "intro.adoc")},
		{"https://site.com/", filepath.Join(dir, "index.adoc")},
		{"https://site.com/docs/", filepath.Join(dir, "docs.adoc")},
	}
	for _, tt := range tests {
		path, err := w.WriteTree(tt.url, []byte("x"), ".adoc")
		require.NoError(t, err)
		require.Equal(t, tt.want, path)
	}
}

func TestNewCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
