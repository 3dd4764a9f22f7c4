//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"crisiscompass/internal/mm"
	"crisiscompass/internal/str"
	"crisiscompass/internal/vv"
)

var (
	Config *str.CurrentConfiguration
	Msg    = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)
)

// BuildDefaultConfig - the settings you get if you supply no config file and no flags
func BuildDefaultConfig() *str.CurrentConfiguration {
	return &str.CurrentConfiguration{
		BlackAndWhite: false,
		CSVFile:       vv.DEFAULTCSVFILE,
		EchoLog:       0,
		Gzip:          false,
		HostIP:        vv.SERVEDFROMHOST,
		HostPort:      vv.SERVEDFROMPORT,
		LDATopics:     vv.LDATOPICS,
		LogLevel:      mm.MSGCRIT,
		QuietStart:    false,
		TopicLabels:   vv.DefaultTopicLabels,
	}
}

// ConfigAtLaunch - read the configuration values from the defaults, then JSON, then the command line
func ConfigAtLaunch() {
	const (
		FAIL1 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL2 = "ConfigAtLaunch() missing a value after '%s'"
		WARN1 = "%d topic labels supplied for %d topics; generating generic labels"
	)

	Config = BuildDefaultConfig()

	cf := vv.CONFIGNAME

	args := os.Args[1:]

	grab := func(i int, a string) string {
		if i+1 >= len(args) {
			Msg.Emit(fmt.Sprintf(FAIL2, a), mm.MSGCRIT)
			Msg.ExitOrHang(1)
		}
		return args[i+1]
	}

	// a first pass so "-cf" wins before the file is read
	for i, a := range args {
		if a == "-cf" {
			cf = grab(i, a)
		}
	}

	loadedcfg, e := os.Open(cf)
	if e == nil {
		decoderc := json.NewDecoder(loadedcfg)
		confc := str.CurrentConfiguration{}
		errc := decoderc.Decode(&confc)
		_ = loadedcfg.Close()
		if errc == nil {
			Config = &confc
		} else {
			Msg.Emit(fmt.Sprintf(FAIL1, cf), mm.MSGCRIT)
		}
	}

	// an old or hand-built config file might zero out values that must not be zero
	if Config.LDATopics < 1 {
		Config.LDATopics = vv.LDATOPICS
	}
	if Config.HostPort == 0 {
		Config.HostPort = vv.SERVEDFROMPORT
	}
	if Config.HostIP == "" {
		Config.HostIP = vv.SERVEDFROMHOST
	}
	if Config.CSVFile == "" {
		Config.CSVFile = vv.DEFAULTCSVFILE
	}
	if len(Config.TopicLabels) == 0 {
		Config.TopicLabels = vv.DefaultTopicLabels
	}

	for i, a := range args {
		switch a {
		case "-v":
			fmt.Println(PrintVersion())
			os.Exit(0)
		case "-cf":
			// handled above
		case "-csv":
			Config.CSVFile = grab(i, a)
		case "-k":
			k, err := strconv.Atoi(grab(i, a))
			Msg.Error(err)
			Config.LDATopics = k
		case "-ip":
			Config.HostIP = grab(i, a)
		case "-p":
			p, err := strconv.Atoi(grab(i, a))
			Msg.Error(err)
			Config.HostPort = p
		case "-gl":
			ll, err := strconv.Atoi(grab(i, a))
			Msg.Error(err)
			Config.LogLevel = ll
		case "-el":
			el, err := strconv.Atoi(grab(i, a))
			Msg.Error(err)
			Config.EchoLog = el
		case "-bw":
			Config.BlackAndWhite = true
		case "-gz":
			Config.Gzip = true
		case "-q":
			Config.QuietStart = true
		}
	}

	// the model hands back K distributions per document; the label array has to line up with them
	if len(Config.TopicLabels) != Config.LDATopics {
		Msg.Emit(fmt.Sprintf(WARN1, len(Config.TopicLabels), Config.LDATopics), mm.MSGWARN)
		ll := make([]string, Config.LDATopics)
		for i := range ll {
			ll[i] = fmt.Sprintf("Topic %d", i+1)
		}
		Config.TopicLabels = ll
	}

	Msg.LLvl = Config.LogLevel
	Msg.BW = Config.BlackAndWhite
}
