//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"fmt"
	"runtime"

	"crisiscompass/internal/vv"
)

//
// VERSION INFO BUILD TIME INJECTION
//

// these next variables can be injected at build time: 'go build -ldflags "-X crisiscompass/internal/lnch.GitCommit=$GIT_COMMIT"', etc

var GitCommit string
var BuildDate string

// PrintVersion - the one-line version banner
func PrintVersion() string {
	// example:
	// [CC] CrisisCompass (v0.1.0) [git: 64974732]
	out := fmt.Sprintf("[%s] %s (v%s)", vv.SHORTNAME, vv.MYNAME, vv.VERSION)
	if GitCommit != "" {
		out += fmt.Sprintf(" [git: %s]", GitCommit)
	}
	if BuildDate != "" {
		out += fmt.Sprintf(" [built: %s]", BuildDate)
	}
	out += fmt.Sprintf(" [%s, %s/%s]", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return out
}
