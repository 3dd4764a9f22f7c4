//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"regexp"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"golang.org/x/text/unicode/norm"

	"crisiscompass/internal/vv"
)

//
// TEXT NORMALIZATION
//

// the order of the steps matters for reproducibility: lower-case; squash every run of
// non-word characters into one space; split; toss stop words and stubs; lemmatize; re-join

var notword = regexp.MustCompile(`\W+`)

// Normalizer - turns raw free text into the whitespace-joined token strings the modeler wants
type Normalizer struct {
	lem *golem.Lemmatizer
}

func NewNormalizer() (*Normalizer, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return &Normalizer{lem: lem}, nil
}

// Clean - one raw impact description --> one normalized document; "" in yields "" out
func (n *Normalizer) Clean(raw string) string {
	text := norm.NFC.String(raw)
	text = strings.ToLower(text)
	text = notword.ReplaceAllString(text, " ")

	words := strings.Fields(text)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < vv.MINTOKENLEN || IsStop(w) {
			continue
		}
		l := n.lem.Lemma(w)
		// a lemma can come out shorter than its surface form ("oxen" --> "ox")
		if len(l) < vv.MINTOKENLEN {
			continue
		}
		kept = append(kept, l)
	}

	return strings.Join(kept, " ")
}

// CleanAll - one normalized document per raw text, order preserved
func (n *Normalizer) CleanAll(raw []string) []string {
	docs := make([]string, len(raw))
	for i := 0; i < len(raw); i++ {
		docs[i] = n.Clean(raw[i])
	}
	return docs
}
