//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"sort"
	"strings"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"crisiscompass/internal/gen"
)

//
// VECTORISATION
//

// PhraseVectoriser - a count vectoriser over single words plus adjacent two-word phrases,
// with document-frequency bounds on the vocabulary; satisfies nlp.Vectoriser so it can sit
// at the head of an nlp.Pipeline ahead of the tf-idf transform and the LDA model
type PhraseVectoriser struct {
	Vocabulary map[string]int
	MinDocs    int
	MaxDocFrac float64
	stop       func(string) bool
}

func NewPhraseVectoriser(mindocs int, maxfrac float64, stop func(string) bool) *PhraseVectoriser {
	return &PhraseVectoriser{
		MinDocs:    mindocs,
		MaxDocFrac: maxfrac,
		stop:       stop,
	}
}

// terms - tokenize one document: stop words go first, then unigrams + adjacent bigrams of the survivors
func (pv *PhraseVectoriser) terms(doc string) []string {
	words := strings.Fields(doc)

	kept := make([]string, 0, len(words))
	for _, w := range words {
		if pv.stop != nil && pv.stop(w) {
			continue
		}
		kept = append(kept, w)
	}

	tt := make([]string, 0, 2*len(kept))
	tt = append(tt, kept...)
	for i := 0; i+1 < len(kept); i++ {
		tt = append(tt, kept[i]+" "+kept[i+1])
	}
	return tt
}

// Fit - build the bounded vocabulary from the training corpus; term indices are assigned in
// sorted term order so that repeated fits over the same corpus are bit-for-bit identical
func (pv *PhraseVectoriser) Fit(train ...string) nlp.Vectoriser {
	df := make(map[string]int)
	for _, doc := range train {
		for _, t := range gen.Unique(pv.terms(doc)) {
			df[t]++
		}
	}

	ceiling := pv.MaxDocFrac * float64(len(train))

	var keep []string
	for t, n := range df {
		if n >= pv.MinDocs && float64(n) <= ceiling {
			keep = append(keep, t)
		}
	}
	sort.Strings(keep)

	pv.Vocabulary = make(map[string]int, len(keep))
	for i, t := range keep {
		pv.Vocabulary[t] = i
	}

	return pv
}

// Transform - documents --> term-document matrix (rows = terms, columns = documents); a
// document with no vocabulary hits becomes a zero column, which the model tolerates, but a
// whole corpus with tokens and zero hits means the wrong vocabulary and is an error
func (pv *PhraseVectoriser) Transform(docs ...string) (mat.Matrix, error) {
	if pv.Vocabulary == nil {
		return nil, ErrNotFitted
	}
	if len(pv.Vocabulary) == 0 {
		return nil, &VocabularyError{MinDocs: pv.MinDocs, MaxDocFrac: pv.MaxDocFrac}
	}

	m := sparse.NewDOK(len(pv.Vocabulary), len(docs))

	seen := 0
	hits := 0
	for j, doc := range docs {
		for _, t := range pv.terms(doc) {
			seen++
			if i, ok := pv.Vocabulary[t]; ok {
				hits++
				m.Set(i, j, m.At(i, j)+1)
			}
		}
	}

	if seen > 0 && hits == 0 {
		return nil, ErrVocabularyMismatch
	}

	return m.ToCSR(), nil
}

// FitTransform - fit on the corpus and immediately transform it
func (pv *PhraseVectoriser) FitTransform(docs ...string) (mat.Matrix, error) {
	return pv.Fit(docs...).Transform(docs...)
}
