//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// CurrentConfiguration - runtime settings assembled from the defaults, then a JSON file, then the command line
type CurrentConfiguration struct {
	BlackAndWhite bool
	CSVFile       string
	EchoLog       int // "none", "terse", "verbose"
	Gzip          bool
	HostIP        string
	HostPort      int
	LDATopics     int
	LogLevel      int
	QuietStart    bool
	TopicLabels   []string
}
