package snapmeta_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/structmerge/snapmeta"
	"github.com/structmerge/snapmeta/treetest"
)

const subtreeFixture = `
name: root
children:
  - name: left
    children:
      - name: left-leaf
  - name: right
    children:
      - name: right-inner
        children:
          - name: right-leaf
`

func TestStore_MarkAndClearConstrained(t *testing.T) {
	s := snapmeta.New()
	n := treetest.MustParse(t, `name: n`)

	assert.False(t, s.IsConstrainedByDifferential(n))

	s.MarkConstrainedByDifferential(n)
	assert.True(t, s.IsConstrainedByDifferential(n))

	s.ClearConstrainedByDifferential(n)
	assert.False(t, s.IsConstrainedByDifferential(n))

	// Clearing an untagged node is a no-op.
	s.ClearConstrainedByDifferential(n)
	assert.False(t, s.IsConstrainedByDifferential(n))
}

func TestStore_ConstrainedNilNode(t *testing.T) {
	s := snapmeta.New()

	// Single-node operations tolerate absence.
	s.MarkConstrainedByDifferential(nil)
	s.ClearConstrainedByDifferential(nil)
	assert.False(t, s.IsConstrainedByDifferential(nil))
}

func TestStore_ClearConstrainedDeep(t *testing.T) {
	s := snapmeta.New()
	root := treetest.MustParse(t, subtreeFixture)

	for _, node := range treetest.Flatten(root) {
		s.MarkConstrainedByDifferential(node)
	}
	require.True(t, s.IsConstrainedByDifferential(root.Find("right-leaf")))

	err := s.ClearConstrainedByDifferentialDeep(context.Background(), root)
	require.NoError(t, err)

	for _, node := range treetest.Flatten(root) {
		assert.False(t, s.IsConstrainedByDifferential(node),
			"node %s should be cleared", node.Name)
	}
}

func TestStore_ClearConstrainedDeep_OnlyTouchesSubtree(t *testing.T) {
	s := snapmeta.New()
	root := treetest.MustParse(t, subtreeFixture)
	other := treetest.MustParse(t, `name: other`)

	s.MarkConstrainedByDifferential(root.Find("left-leaf"))
	s.MarkConstrainedByDifferential(other)
	s.MarkGenerated(root) // other kinds must survive the clear

	err := s.ClearConstrainedByDifferentialDeep(context.Background(), root)
	require.NoError(t, err)

	assert.False(t, s.IsConstrainedByDifferential(root.Find("left-leaf")))
	assert.True(t, s.IsConstrainedByDifferential(other),
		"nodes outside the subtree must keep their tag")
	assert.True(t, s.IsGenerated(root),
		"deep clear must only remove the constraint kind")
}

func TestStore_ClearConstrainedDeep_NilNode(t *testing.T) {
	s := snapmeta.New()

	err := s.ClearConstrainedByDifferentialDeep(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, snapmeta.ErrNilNode))
	assert.True(t, snapmeta.IsInvalidArgument(err))
}

func TestStore_ClearConstrainedDeepAll(t *testing.T) {
	s := snapmeta.New()
	roots := []snapmeta.Node{
		treetest.MustParse(t, subtreeFixture),
		treetest.MustParse(t, `{name: second, children: [{name: second-leaf}]}`),
		treetest.MustParse(t, `name: third`),
	}

	for _, root := range roots {
		for _, node := range treetest.Flatten(root.(*treetest.Node)) {
			s.MarkConstrainedByDifferential(node)
		}
	}

	err := s.ClearConstrainedByDifferentialDeepAll(context.Background(), roots)
	require.NoError(t, err)

	for _, root := range roots {
		for _, node := range treetest.Flatten(root.(*treetest.Node)) {
			assert.False(t, s.IsConstrainedByDifferential(node),
				"node %s should be cleared", node.Name)
		}
	}
}

func TestStore_ClearConstrainedDeepAll_NilSlice(t *testing.T) {
	s := snapmeta.New()

	err := s.ClearConstrainedByDifferentialDeepAll(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, snapmeta.ErrNilNodeList))
	assert.True(t, snapmeta.IsInvalidArgument(err))
}

func TestStore_ClearConstrainedDeepAll_EmptySlice(t *testing.T) {
	s := snapmeta.New()

	err := s.ClearConstrainedByDifferentialDeepAll(context.Background(), []snapmeta.Node{})

	assert.NoError(t, err, "an empty non-nil slice is a successful no-op")
}

func TestStore_ClearConstrainedDeepAll_StopsOnFirstFailure(t *testing.T) {
	s := snapmeta.New()
	tagged := treetest.MustParse(t, `name: tagged`)
	after := treetest.MustParse(t, `name: after`)
	s.MarkConstrainedByDifferential(tagged)
	s.MarkConstrainedByDifferential(after)

	err := s.ClearConstrainedByDifferentialDeepAll(context.Background(),
		[]snapmeta.Node{tagged, nil, after})

	require.Error(t, err)
	assert.True(t, errors.Is(err, snapmeta.ErrNilNode))
	assert.False(t, s.IsConstrainedByDifferential(tagged),
		"roots before the failure are cleared")
	assert.True(t, s.IsConstrainedByDifferential(after),
		"roots after the failure are left untouched")
}
