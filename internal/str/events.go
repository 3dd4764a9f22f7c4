//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// Event - one historical-event row from the dataset; immutable once loaded
type Event struct {
	Incident    string
	Date        string
	Month       string
	Year        string
	Country     string
	EventType   string
	Place       string
	Impact      string
	Population  string
	Responsible string
	Outcome     string
}
