package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildEmpty(t *testing.T) {
	ol, err := Build([]byte(""))
	require.NoError(t, err)
	require.Equal(t, 0, ol.Size)
	require.Empty(t, ol.Ops)
}

func TestBuildFoldsAscii(t *testing.T) {
	ol, err := Build([]byte("+"))
	require.NoError(t, err)
	require.Equal(t, []Op{{Kind: AsciiAdd, Arg: 1}}, ol.Ops)

	ol, err = Build([]byte("++"))
	require.NoError(t, err)
	require.Equal(t, []Op{{Kind: AsciiAdd, Arg: 2}}, ol.Ops)
}

func TestBuildAntagonistCancellation(t *testing.T) {
	ol, err := Build([]byte("+-"))
	require.NoError(t, err)
	require.Empty(t, ol.Ops, "antagonist pair cancels to nothing once zero-arg nodes are pruned")
}

func TestBuildAntagonistFlip(t *testing.T) {
	ol, err := Build([]byte("-+++"))
	require.NoError(t, err)
	require.Equal(t, []Op{{Kind: AsciiAdd, Arg: 2}}, ol.Ops)
}

func TestBuildAsciiWrapsModulo256(t *testing.T) {
	ol, err := Build([]byte(strings.Repeat("+", 256)))
	require.NoError(t, err)
	require.Empty(t, ol.Ops, "256 '+' wraps to arg 0, which is pruned")

	ol, err = Build([]byte(strings.Repeat("+", 257)))
	require.NoError(t, err)
	require.Equal(t, []Op{{Kind: AsciiAdd, Arg: 1}}, ol.Ops)
}

func TestBuildCellMove(t *testing.T) {
	ol, err := Build([]byte(">"))
	require.NoError(t, err)
	require.Equal(t, []Op{{Kind: CellAdd, Arg: 1}}, ol.Ops)
}

func TestBuildIgnoresComments(t *testing.T) {
	withComments, err := Build([]byte("+ hello \n world -"))
	require.NoError(t, err)
	plain, err := Build([]byte("+-"))
	require.NoError(t, err)
	require.Equal(t, plain.Ops, withComments.Ops, "non-command bytes never affect reduction")
}

func TestBuildLoop(t *testing.T) {
	ol, err := Build([]byte("[+]"))
	require.NoError(t, err)
	require.Equal(t, []Op{
		{Kind: LoopBegin, Arg: 1},
		{Kind: AsciiAdd, Arg: 1},
		{Kind: LoopEnd, Arg: 1},
	}, ol.Ops)
}

func TestBuildUnmatchedRBracket(t *testing.T) {
	_, err := Build([]byte("+]"))
	require.Error(t, err)
	require.Equal(t, "error:1: unmatched ']'", err.Error())
}

func TestBuildUnmatchedLBracket(t *testing.T) {
	_, err := Build([]byte("[+"))
	require.Error(t, err)
	require.Equal(t, "error:2: unmatched '['", err.Error())
}

func TestBuildNestedLoops(t *testing.T) {
	ol, err := Build([]byte("[[]]"))
	require.NoError(t, err)
	require.Equal(t, []Op{
		{Kind: LoopBegin, Arg: 1},
		{Kind: LoopBegin, Arg: 1},
		{Kind: LoopEnd, Arg: 1},
		{Kind: LoopEnd, Arg: 1},
	}, ol.Ops)
}

func TestBuildExactly100NestedLoopsIsFine(t *testing.T) {
	src := strings.Repeat("[", 100) + strings.Repeat("]", 100)
	ol, err := Build([]byte(src))
	require.NoError(t, err)
	require.Equal(t, 200, ol.Size)
}
