//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var modeldocs = []string{
	"war cause famine",
	"treaty sign peace",
	"war famine",
}

func TestFitYieldsProperDistributions(t *testing.T) {
	m := NewModeler(2, nil)
	dists, err := m.Fit(modeldocs)
	require.NoError(t, err)
	require.Len(t, dists, len(modeldocs))

	for i, d := range dists {
		require.Len(t, d, 2)
		total := 0.0
		for _, p := range d {
			assert.GreaterOrEqual(t, p, 0.0, "document %d has a negative weight", i)
			total += p
		}
		assert.InDelta(t, 1.0, total, 1e-6, "document %d weights do not sum to one", i)
	}
}

func TestFitIsReproducible(t *testing.T) {
	a := NewModeler(2, nil)
	b := NewModeler(2, nil)

	da, err := a.Fit(modeldocs)
	require.NoError(t, err)
	db, err := b.Fit(modeldocs)
	require.NoError(t, err)

	require.Equal(t, da, db)
}

func TestEquivalentDocumentsScoreAlike(t *testing.T) {
	// doc 0 and doc 2 hit the same vocabulary terms the same number of times,
	// so their topic distributions have to come out close to each other
	m := NewModeler(2, nil)
	_, err := m.Fit(modeldocs)
	require.NoError(t, err)

	dists, err := m.Transform(modeldocs)
	require.NoError(t, err)
	require.Len(t, dists, len(modeldocs))

	for k := 0; k < 2; k++ {
		assert.InDelta(t, dists[0][k], dists[2][k], 0.05)
	}
}

func TestShuffledCorpusStaysAligned(t *testing.T) {
	// a reordered corpus still gets one proper distribution per document, in corpus order
	shuffled := []string{modeldocs[2], modeldocs[0], modeldocs[1]}

	m := NewModeler(2, nil)
	dists, err := m.Fit(shuffled)
	require.NoError(t, err)
	require.Len(t, dists, len(shuffled))

	for i, d := range dists {
		require.Len(t, d, 2)
		total := 0.0
		for _, p := range d {
			assert.GreaterOrEqual(t, p, 0.0)
			total += p
		}
		assert.InDelta(t, 1.0, total, 1e-6, "document %d weights do not sum to one", i)
	}

	// the content-equivalent documents landed at positions 0 and 1 after the shuffle and
	// still have to score alike: a topic belongs to content, not to corpus position
	dists, err = m.Transform(shuffled)
	require.NoError(t, err)
	for k := 0; k < 2; k++ {
		assert.InDelta(t, dists[0][k], dists[1][k], 0.05)
	}
}

func TestTransformBeforeFitFails(t *testing.T) {
	m := NewModeler(2, nil)
	_, err := m.Transform(modeldocs)
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestFitEmptyCorpus(t *testing.T) {
	m := NewModeler(2, nil)
	_, err := m.Fit(nil)
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestTopTerms(t *testing.T) {
	m := NewModeler(2, nil)
	_, err := m.Fit(modeldocs)
	require.NoError(t, err)

	tt := m.TopTerms(2)
	require.Len(t, tt, 2)
	for _, terms := range tt {
		assert.NotEmpty(t, terms)
		for _, term := range terms {
			assert.Contains(t, m.Vectoriser.Vocabulary, term)
		}
	}
}

func TestBuildCorpusCachesDistributions(t *testing.T) {
	events := testevents()
	cr, err := BuildCorpus(events, modeldocs, []string{"A", "B"}, 2, nil)
	require.NoError(t, err)

	require.Len(t, cr.Dists, len(events))
	assert.Equal(t, []string{"A", "B"}, cr.Labels)

	for i, d := range cr.Dists {
		require.Len(t, d, 2)
		total := 0.0
		for _, p := range d {
			total += p
		}
		assert.InDelta(t, 1.0, total, 1e-6, "cached distribution %d does not sum to one", i)
	}
}

func TestBuildCorpusRejectsBadShapes(t *testing.T) {
	events := testevents()

	_, err := BuildCorpus(events, modeldocs[:2], []string{"A", "B"}, 2, nil)
	assert.Error(t, err)

	_, err = BuildCorpus(events, modeldocs, []string{"A"}, 2, nil)
	assert.Error(t, err)
}
