package dom

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRender(t *testing.T) {
	root, err := Parse(`<!DOCTYPE html>
<html><head><style>p { color: red; }</style></head>
<body><P Class="b" id="a">x &amp; y</P><!-- note --></body></html>`)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Render(&sb, root))
	want := `<html><!DOCTYPE html><html><head><style>p {
  color: red;
}
</style></head><body><p class="b" id="a">x &amp;amp; y</p><!--note --></body></html></html>`
	assert.Equal(t, want, sb.String())
}

func TestMirrorOrigin(t *testing.T) {
	root, err := Parse(`<ul><li class="x">one</li><li>two</li><li class="x">three</li></ul>`)
	require.NoError(t, err)

	m := NewMirror(root)
	require.Equal(t, html.DocumentNode, m.Root.Type)

	sel := cascadia.MustCompile("li.x")
	matches := sel.MatchAll(m.Root)
	require.Len(t, matches, 2)
	assert.Same(t, root.Children[0], m.Origin(matches[0]))
	assert.Same(t, root.Children[2], m.Origin(matches[1]))
	assert.Nil(t, m.Origin(m.Root))
}

func TestDump(t *testing.T) {
	root, err := Parse(`<div b="2" a10="y" a9="x"><style>p{color:blue;}</style>hi<!--c--></div>`)
	require.NoError(t, err)

	want := `element div a9="x" a10="y" b="2"
    style (1 rules)
        p {
          color: blue;
        }
    text "hi"
    comment "c"`
	assert.Equal(t, want, root.String())
}

func TestWalk(t *testing.T) {
	root, err := Parse(`<a><b><c></c></b><d></d></a>`)
	require.NoError(t, err)

	var seen []string
	root.Walk(func(n *Node) bool {
		seen = append(seen, n.TagName())
		return n.TagName() != "b"
	})
	assert.Equal(t, []string{"a", "b", "d"}, seen)
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "    a\n        b", Indent("a\n    b"))
	assert.Equal(t, "    ", Indent(""))
}
