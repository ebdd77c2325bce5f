package treeprint

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xdsa/lib/tree"
)

func buildUnbalanced[K int | string](keys ...K) tree.AVLTree[K] {
	t := tree.NewAVLTree[K](tree.WithAVLTreeRebalanceDisabled[K]())
	for _, key := range keys {
		t.Insert(key)
	}
	return t
}

func requireRender[K int | string](t *testing.T, root tree.Node[K]) []string {
	t.Helper()
	lines, err := Render[K](root)
	require.NoError(t, err)
	return lines
}

func TestRender_Empty(t *testing.T) {
	lines := requireRender[int](t, nil)
	require.NotNil(t, lines)
	require.Empty(t, lines)

	var buf bytes.Buffer
	require.NoError(t, Fprint[int](&buf, nil))
	require.Empty(t, buf.String())
}

func TestRender_SingleNode(t *testing.T) {
	lines := requireRender(t, buildUnbalanced(10).Root())
	require.Equal(t, []string{"10"}, lines)
	assert.NotContains(t, lines[0], "/")
	assert.NotContains(t, lines[0], "\\")
}

func TestRender_ThreeNodes(t *testing.T) {
	root := buildUnbalanced(20, 10, 30).Root()
	require.Equal(t, []string{
		"  20",
		"  / \\",
		"10  30",
	}, requireRender(t, root))
}

func TestRender_Perfect(t *testing.T) {
	root := buildUnbalanced(4, 2, 6, 1, 3, 5, 7).Root()
	require.Equal(t, []string{
		"      _4_",
		"     /   \\",
		"   2       6",
		"  / \\     / \\",
		" 1   3   5   7",
	}, requireRender(t, root))
}

func TestRender_Placeholders(t *testing.T) {
	// Right leaning chain, every absent left child keeps its slot.
	root := buildUnbalanced(1, 2, 3).Root()
	lines := requireRender(t, root)
	require.Len(t, lines, 5)
	require.Equal(t, []string{
		"       1_",
		"         \\",
		"           2",
		"            \\",
		"             3",
	}, lines)
}

func TestRender_WideKeys(t *testing.T) {
	root := buildUnbalanced("bbb", "a", "cc").Root()
	lines := requireRender(t, root)
	require.Len(t, lines, 3)
	// cell width follows the widest key
	require.Equal(t, "   bbb", lines[0])
	require.Equal(t, "  a    cc", lines[2])
	for _, line := range lines {
		require.Equal(t, line, strings.TrimRight(line, " "))
	}
}

func TestRender_LineCount(t *testing.T) {
	for n := 1; n <= 64; n++ {
		avl := tree.NewAVLTree[int]()
		for i := 0; i < n; i++ {
			avl.Insert(i)
		}
		h := Height(avl.Root())
		require.Equal(t, avl.Height(), h)
		require.Len(t, requireRender(t, avl.Root()), 2*h-1)
	}
}

func TestRender_TooTall(t *testing.T) {
	keys := make([]int, 0, 40)
	for i := 0; i < 40; i++ {
		keys = append(keys, i)
	}
	root := buildUnbalanced(keys...).Root()
	lines, err := Render(root)
	require.ErrorIs(t, err, ErrTreeTooTall)
	require.Nil(t, lines)

	var buf bytes.Buffer
	require.ErrorIs(t, Fprint(&buf, root), ErrTreeTooTall)
	require.Empty(t, buf.String())

	// The limit itself still renders.
	root = buildUnbalanced(keys[:MaxHeight]...).Root()
	require.Len(t, requireRender(t, root), 2*MaxHeight-1)
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestFprint(t *testing.T) {
	root := buildUnbalanced(20, 10, 30).Root()
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, root))
	require.Equal(t, "  20\n  / \\\n10  30\n", buf.String())

	require.ErrorIs(t, Fprint(failingWriter{}, root), errWrite)
}

func TestSnap(t *testing.T) {
	require.Nil(t, Snap[int](nil))
	snap := Snap(buildUnbalanced(20, 10).Root())
	require.Equal(t, 20, snap.Key)
	require.Equal(t, 2, snap.Height)
	require.Equal(t, 10, snap.Left.Key)
	require.Nil(t, snap.Left.Left)
	require.Nil(t, snap.Right)
}
