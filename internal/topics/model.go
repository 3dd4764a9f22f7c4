//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"crisiscompass/internal/vv"
)

//
// TOPIC MODELING
//

// see https://github.com/james-bowman/nlp/blob/26d441fa0ded/lda.go for the LDA defaults:
// Alpha 0.1, Eta 0.01, BatchSize 100, BurnInPasses 1, TransformationPasses 500, ...

// Modeler - the fitted term-weighting transform and the fitted LDA model; the vocabulary is
// baked into the model's term index, so the two are only ever used as a pair
type Modeler struct {
	K          int
	Vectoriser *PhraseVectoriser
	lda        *nlp.LatentDirichletAllocation
	pipeline   *nlp.Pipeline
	fitted     bool
}

// NewModeler - an unfitted vectoriser+tf-idf+LDA pipeline; the seed makes every fit reproducible
func NewModeler(k int, stop func(string) bool) *Modeler {
	pv := NewPhraseVectoriser(vv.VOCABMINDOCS, vv.VOCABMAXFRAC, stop)

	lda := nlp.NewLatentDirichletAllocation(k)
	lda.Iterations = vv.LDAITERATIONS
	lda.Rnd = rand.New(rand.NewSource(vv.LDASEED))
	lda.RhoPhi = nlp.LearningSchedule{S: 1, Tau: vv.LDATAU, Kappa: vv.LDAKAPPA}
	lda.RhoTheta = nlp.LearningSchedule{S: 1, Tau: vv.LDATAU, Kappa: vv.LDAKAPPA}
	// parallel updates would cost the seeded determinism
	lda.Processes = 1

	return &Modeler{
		K:          k,
		Vectoriser: pv,
		lda:        lda,
		pipeline:   nlp.NewPipeline(pv, nlp.NewTfidfTransformer(), lda),
	}
}

// Fit - one-shot batch fit over the full corpus; returns one topic distribution per document,
// aligned with the corpus order; fitting succeeds fully or fails fully
func (m *Modeler) Fit(docs []string) ([][]float64, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	dot, err := m.pipeline.FitTransform(docs...)
	if err != nil {
		return nil, err
	}

	m.fitted = true
	return distributions(dot), nil
}

// Transform - distributions for any documents from the fitted vocabulary space
func (m *Modeler) Transform(docs []string) ([][]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	dot, err := m.pipeline.Transform(docs...)
	if err != nil {
		return nil, err
	}

	return distributions(dot), nil
}

// Components - the topic-over-term weight matrix of the fitted model
func (m *Modeler) Components() mat.Matrix {
	return m.lda.Components()
}

// distributions - docsOverTopics matrix (rows = topics, columns = documents) --> per-document slices
func distributions(dot mat.Matrix) [][]float64 {
	rows, columns := dot.Dims()
	dd := make([][]float64, columns)
	for doc := 0; doc < columns; doc++ {
		dd[doc] = make([]float64, rows)
		for topic := 0; topic < rows; topic++ {
			dd[doc][topic] = dot.At(topic, doc)
		}
	}
	return dd
}
