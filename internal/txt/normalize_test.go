//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newnormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n, err := NewNormalizer()
	require.NoError(t, err)
	return n
}

func TestCleanLowercasesAndStripsPunctuation(t *testing.T) {
	n := newnormalizer(t)

	out := n.Clean("Widespread FAMINE, economic collapse; political unrest!")

	require.NotEmpty(t, out)
	for _, r := range out {
		ok := unicode.IsLower(r) || unicode.IsDigit(r) || r == ' '
		assert.True(t, ok, "unexpected rune %q in %q", r, out)
	}
	assert.Contains(t, strings.Fields(out), "famine")
}

func TestCleanDropsShortTokens(t *testing.T) {
	n := newnormalizer(t)

	out := n.Clean("it is an EU era war")
	for _, w := range strings.Fields(out) {
		assert.GreaterOrEqual(t, len(w), 3, "token %q survived the length filter", w)
	}
}

func TestCleanDropsStopwords(t *testing.T) {
	n := newnormalizer(t)

	assert.Equal(t, "", n.Clean("the and because between through"))

	out := n.Clean("the famine and the war")
	assert.Equal(t, "famine war", out)
}

func TestCleanEmptyInput(t *testing.T) {
	n := newnormalizer(t)

	assert.Equal(t, "", n.Clean(""))
	assert.Equal(t, "", n.Clean("   \t\n"))
	assert.Equal(t, "", n.Clean("..。!!??"))
}

func TestCleanIsIdempotent(t *testing.T) {
	n := newnormalizer(t)

	raw := []string{
		"Widespread famine and economic collapse",
		"Military conflict; treaty signed 1918",
		"Colonial rule ended after protest movements",
	}
	for _, r := range raw {
		once := n.Clean(r)
		twice := n.Clean(once)
		assert.Equal(t, once, twice, "cleaning %q a second time changed it", r)
	}
}

func TestCleanAllPreservesOrderAndLength(t *testing.T) {
	n := newnormalizer(t)

	raw := []string{"Famine struck the region", "", "Treaty signed"}
	out := n.CleanAll(raw)

	require.Len(t, out, len(raw))
	assert.Contains(t, out[0], "famine")
	assert.Equal(t, "", out[1])
	assert.Contains(t, out[2], "treaty")
}

func TestIsStop(t *testing.T) {
	assert.True(t, IsStop("the"))
	assert.True(t, IsStop("and"))
	assert.False(t, IsStop("famine"))
	assert.False(t, IsStop("war"))
}
