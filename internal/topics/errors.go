//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCorpus is returned when a fit is attempted over zero documents.
	ErrEmptyCorpus = errors.New("topic model fit requires at least one document")

	// ErrNotFitted is returned when Transform is called before a successful Fit.
	ErrNotFitted = errors.New("topic model has not been fitted")

	// ErrVocabularyMismatch is returned when a transform corpus shares no terms with the
	// fitted vocabulary; recoverable by re-fitting against the new documents.
	ErrVocabularyMismatch = errors.New("documents share no terms with the fitted vocabulary")
)

// VocabularyError - the document-frequency bounds filtered away every candidate term; fatal
type VocabularyError struct {
	MinDocs    int
	MaxDocFrac float64
}

func (e *VocabularyError) Error() string {
	return fmt.Sprintf("empty vocabulary after document-frequency filtering (min %d docs, max %.0f%% of docs)",
		e.MinDocs, e.MaxDocFrac*100)
}
