//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "CrisisCompass"
	SHORTNAME = "CC"
	VERSION   = "0.1.0"

	DEFAULTCSVFILE = "World Important Dates.csv"
	CONFIGNAME     = "cc-conf.json"

	SERVEDFROMHOST           = "127.0.0.1"
	SERVEDFROMPORT           = 8000
	TIMEOUTRD                = 15 * time.Second
	TIMEOUTWR                = 120 * time.Second
	MAXECHOREQPERSECONDPERIP = 60
	JSONINDENT               = "  "

	// topic modeling; the learning-rate values follow the classic online schedule: rho = (LDATAU + t) ^ -LDAKAPPA
	LDATOPICS     = 7
	LDAITERATIONS = 10
	LDAKAPPA      = 0.7
	LDATAU        = 50.0
	LDASEED       = 42

	// a term must show up in at least VOCABMINDOCS documents and in no more than VOCABMAXFRAC of them
	VOCABMINDOCS = 2
	VOCABMAXFRAC = 0.9

	// an event belongs to a topic when its probability mass on that topic exceeds TOPICTHRESHOLD
	TOPICTHRESHOLD = 0.1

	// tokens shorter than this never reach the modeler
	MINTOKENLEN = 3
)

var (
	// DefaultTopicLabels - the model itself only knows topic indices 0..K-1; these names were chosen for the
	// default 7-topic fit of the "World Important Dates" dataset and can be overridden via the config file
	DefaultTopicLabels = []string{
		"Economic Conflicts and Leadership",
		"Education and Establishment in the Roman Empire",
		"Presidential Influence in WWII and Global Affairs",
		"The Transition from British Rule to Independence",
		"Monarchies, Societal Dynamics, and Muslim-Jewish Relations",
		"The British Parliament's Global Initiatives",
		"Cultural Loss and Historical Significance",
	}
)
