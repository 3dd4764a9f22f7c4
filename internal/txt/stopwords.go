//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"github.com/kljensen/snowball/english"
)

//
// STOPWORDS
//

// IsStop - member of the standard English stop word set?
func IsStop(w string) bool {
	return english.IsStopWord(w)
}
