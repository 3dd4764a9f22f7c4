//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"

	"crisiscompass/internal/str"
)

//
// THE FITTED SESSION
//

// Corpus - one session's worth of state: the events, their normalized documents, the fitted
// pair, and the cached distributions; immutable after BuildCorpus, so any number of readers
// may filter it concurrently; re-fitting means building a fresh Corpus, which invalidates
// every previously computed distribution at once
type Corpus struct {
	Events []str.Event
	Docs   []string
	Labels []string
	Model  *Modeler
	Dists  [][]float64
}

// BuildCorpus - normalize-once, fit-once; the distributions are computed here a single time
// and reused by every later selection rather than recomputed per click
func BuildCorpus(events []str.Event, docs []string, labels []string, k int, stop func(string) bool) (*Corpus, error) {
	if len(docs) != len(events) {
		return nil, fmt.Errorf("%d documents for %d events; the two must be aligned", len(docs), len(events))
	}
	if len(labels) != k {
		return nil, fmt.Errorf("%d topic labels for %d topics; one label per topic required", len(labels), k)
	}

	m := NewModeler(k, stop)
	dd, err := m.Fit(docs)
	if err != nil {
		return nil, err
	}

	return &Corpus{
		Events: events,
		Docs:   docs,
		Labels: labels,
		Model:  m,
		Dists:  dd,
	}, nil
}
