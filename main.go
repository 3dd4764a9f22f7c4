//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"time"

	"crisiscompass/internal/lnch"
	"crisiscompass/internal/load"
	"crisiscompass/internal/topics"
	"crisiscompass/internal/txt"
	"crisiscompass/internal/vlt"
	"crisiscompass/internal/vv"
)

var (
	// TheCorpus - the events plus the one fitted model over them; built once at launch, read-only afterwards
	TheCorpus *topics.Corpus

	// AllStates - the navigation state of every browser that has ever visited
	AllStates = vlt.MakeNavVault()

	msg  = func(m string, t int) { lnch.Msg.Emit(m, t) }
	chke = func(e error) { lnch.Msg.Error(e) }
)

func main() {
	lnch.ConfigAtLaunch()

	if !lnch.Config.QuietStart {
		msg(fmt.Sprintf("%s (v.%s) [loglevel=%d]", vv.MYNAME, vv.VERSION, lnch.Config.LogLevel), -1)
	}

	start := time.Now()
	previous := time.Now()

	events, e := load.Events(lnch.Config.CSVFile)
	chke(e)
	lnch.Msg.Timer("A1", fmt.Sprintf("%d events loaded from '%s'", len(events), lnch.Config.CSVFile), start, previous)

	previous = time.Now()
	nrm, e := txt.NewNormalizer()
	chke(e)
	docs := nrm.CleanAll(load.Documents(events))
	lnch.Msg.Timer("A2", "impact texts normalized", start, previous)

	previous = time.Now()
	cr, e := topics.BuildCorpus(events, docs, lnch.Config.TopicLabels, lnch.Config.LDATopics, txt.IsStop)
	chke(e)
	TheCorpus = cr
	lnch.Msg.Timer("A3", fmt.Sprintf("%d-topic model fitted (%d terms in the vocabulary)",
		lnch.Config.LDATopics, len(cr.Model.Vectoriser.Vocabulary)), start, previous)

	StartEchoServer()
}
