package spfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLedger_SourceHasNoIntermediates(t *testing.T) {
	l := newLedger("A")

	inter, err := l.intermediates("A")
	require.NoError(t, err)
	require.Empty(t, inter)
}

func TestLedger_DirectNeighbor(t *testing.T) {
	l := newLedger("A")
	l.record("B", "A")

	inter, err := l.intermediates("B")
	require.NoError(t, err)
	require.Empty(t, inter, "a direct neighbor has no intermediate nodes")
}

func TestLedger_ChainReversesIntoPathOrder(t *testing.T) {
	l := newLedger("A")
	l.record("B", "A")
	l.record("C", "B")
	l.record("D", "C")

	inter, err := l.intermediates("D")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C"}, inter)
}

func TestLedger_RecordOverwritesPredecessor(t *testing.T) {
	l := newLedger("A")
	l.record("B", "A")
	l.record("C", "A") // first discovery: A→C
	l.record("C", "B") // improvement reroutes through B

	inter, err := l.intermediates("C")
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, inter)
}

func TestLedger_UnreachedNode(t *testing.T) {
	l := newLedger("A")

	_, err := l.intermediates("Z")
	require.ErrorIs(t, err, ErrUnreachedNode)
}
