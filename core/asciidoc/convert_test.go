package asciidoc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// convert is a test helper that fails the test on conversion errors.
func convert(t *testing.T, fragment string) string {
	t.Helper()
	out, err := Convert(fragment)
	require.NoError(t, err)
	return out
}

func TestHeadings(t *testing.T) {
	for level := 1; level <= 6; level++ {
		in := fmt.Sprintf("<h%d>text</h%d>", level, level)
		want := strings.Repeat("=", level) + " text\n\n"
		if diff := cmp.Diff(want, convert(t, in)); diff != "" {
			t.Errorf("h%d mismatch (-want +got):\n%s", level, diff)
		}
	}
}

func TestInlineElements(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strong", "<strong>x</strong>", "*x*"},
		{"bold", "<b>x</b>", "*x*"},
		{"em", "<em>x</em>", "_x_"},
		{"italic", "<i>x</i>", "_x_"},
		{"nested emphasis", "<strong><em>x</em></strong>", "*_x_*"},
		{"inline code", "<code>x</code>", "`x`"},
		{"paragraph", "<p>x</p>", "x\n\n"},
		{"empty paragraph vanishes", "<p>  </p>", ""},
		{"line break", "<p>a<br>b</p>", "a +\nb\n\n"},
		{"unknown tag passes through", "<span>x</span>", "x"},
		{"rule", "<hr>", "'''\n\n"},
		{"image", `<img src="a.png" alt="A">`, "image::a.png[A]\n\n"},
		{"image without attributes", "<img>", "image::[]\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, convert(t, tt.in)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"href equals text", `<a href="http://x">http://x</a>`, "http://x"},
		{"labelled", `<a href="http://x">label</a>`, "http://x[label]"},
		{"empty text", `<a href="http://x"></a>`, "http://x"},
		{"missing href", "<a>label</a>", "[label]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, convert(t, tt.in))
		})
	}
}

func TestLists(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"flat unordered",
			"<ul><li>A</li><li>B</li></ul>",
			"* A\n* B\n\n",
		},
		{
			"flat ordered",
			"<ol><li>A</li><li>B</li></ol>",
			". A\n. B\n\n",
		},
		{
			"nested",
			"<ul><li>A<ul><li>B</li></ul></li></ul>",
			"* A\n** B\n\n",
		},
		{
			"ordered inside unordered",
			"<ul><li>A<ol><li>B</li></ol></li></ul>",
			"* A\n.. B\n\n",
		},
		{
			"item whitespace trimmed",
			"<ul><li>  A  </li></ul>",
			"* A\n\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, convert(t, tt.in)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTable(t *testing.T) {
	in := "<table><tr><th>H</th></tr><tr><td>D</td></tr></table>"
	want := "[cols=\"*\"]\n|===\n|*H\n|D\n|===\n\n"
	if diff := cmp.Diff(want, convert(t, in)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTableMultiColumn(t *testing.T) {
	in := `<table>
		<tr><th>Name</th><th>Value</th></tr>
		<tr><td>a</td><td>1</td></tr>
	</table>`
	want := "[cols=\"*\"]\n|===\n|*Name\n|*Value\n|a\n|1\n|===\n\n"
	require.Equal(t, want, convert(t, in))
}

func TestCodeBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"language class",
			`<pre><code class="language-go">x</code></pre>`,
			"[source,go]\n----\nx\n----\n\n",
		},
		{
			"data-lang attribute",
			`<pre><code data-lang="ruby">x</code></pre>`,
			"[source,ruby]\n----\nx\n----\n\n",
		},
		{
			"default language",
			"<pre><code>x</code></pre>",
			"[source,text]\n----\nx\n----\n\n",
		},
		{
			"pre without code",
			"<pre>raw text</pre>",
			"----\nraw text\n----\n\n",
		},
		{
			"multiline code",
			"<pre><code>a\nb\n</code></pre>",
			"[source,text]\n----\na\nb\n----\n\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, convert(t, tt.in)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlockquote(t *testing.T) {
	in := "<blockquote><p>Line one</p><p>Line two</p></blockquote>"
	want := "[quote]\n____\nLine one\nLine two\n____\n\n"
	if diff := cmp.Diff(want, convert(t, in)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAdmonitions(t *testing.T) {
	t.Run("icon title drives the label", func(t *testing.T) {
		in := `<div class="admonitionblock warning">
			<table><tr>
				<td class="icon"><i class="fa icon-warning" title="Warning"></i></td>
				<td class="content">Beware.</td>
			</tr></table>
		</div>`
		want := "[WARNING]\n====\nBeware.\n====\n\n"
		require.Equal(t, want, convert(t, in))
	})

	t.Run("missing icon defaults to NOTE", func(t *testing.T) {
		in := `<div class="admonitionblock"><div class="content">Remember.</div></div>`
		want := "[NOTE]\n====\nRemember.\n====\n\n"
		require.Equal(t, want, convert(t, in))
	})

	t.Run("missing content drops the block", func(t *testing.T) {
		in := `<div class="admonitionblock note"><div class="title">Note</div></div>`
		require.Equal(t, "", convert(t, in))
	})
}

func TestListingBlocks(t *testing.T) {
	t.Run("content sub-element preferred", func(t *testing.T) {
		in := `<div class="listingblock"><div class="content"><pre>foo</pre></div></div>`
		require.Equal(t, "----\nfoo\n----\n\n", convert(t, in))
	})

	t.Run("falls back to own text", func(t *testing.T) {
		in := `<div class="literalblock">bar</div>`
		require.Equal(t, "----\nbar\n----\n\n", convert(t, in))
	})
}

func TestPlainDivPassesThrough(t *testing.T) {
	require.Equal(t, "x\n\n", convert(t, "<div><p>x</p></div>"))
}

func TestCommentsIgnored(t *testing.T) {
	require.Equal(t, "x", convert(t, "<!-- hidden --><span>x</span>"))
}

// Converting the same fragment repeatedly must be byte-identical, and
// list depth must not leak between independent Convert calls.
func TestConvertIsDeterministicAndStateless(t *testing.T) {
	nested := "<ul><li>A<ul><li>B</li></ul></li></ul>"
	flat := "<ol><li>C</li></ol>"

	e := New()
	first, err := e.Convert(nested)
	require.NoError(t, err)

	// An unrelated document in between must not shift markers.
	out, err := e.Convert(flat)
	require.NoError(t, err)
	require.Equal(t, ". C\n\n", out)

	second, err := e.Convert(nested)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated conversion differs (-first +second):\n%s", diff)
	}
	require.Equal(t, "* A\n** B\n\n", second)
}

func TestDocumentOrderPreserved(t *testing.T) {
	in := "<h2>Title</h2><p>First.</p><p>Second.</p>"
	want := "== Title\n\nFirst.\n\nSecond.\n\n"
	require.Equal(t, want, convert(t, in))
}
