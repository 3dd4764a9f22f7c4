//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package load

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"crisiscompass/internal/str"
)

//
// CSV INGESTION
//

// the dataset headers as shipped; columns are resolved by name so column order is free to vary

const (
	ColIncident    = "Name of Incident"
	ColDate        = "Date"
	ColMonth       = "Month"
	ColYear        = "Year"
	ColCountry     = "Country"
	ColType        = "Type of Event"
	ColPlace       = "Place Name"
	ColImpact      = "Impact"
	ColPopulation  = "Affected Population"
	ColResponsible = "Important Person/Group Responsible"
	ColOutcome     = "Outcome"
)

// DataLoadError - the dataset could not be read or parsed
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("could not load dataset %q: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// Events - read the dataset from disk
func Events(path string) ([]str.Event, error) {
	fl, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	defer fl.Close()

	ee, err := ParseEvents(fl)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	return ee, nil
}

// ParseEvents - parse dataset rows; the header row is mandatory, short rows are padded
func ParseEvents(r io.Reader) ([]str.Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("missing header row: %w", err)
	}

	cols := make(map[string]int)
	for i, h := range head {
		cols[strings.TrimSpace(h)] = i
	}

	required := []string{ColIncident, ColYear, ColCountry, ColType, ColImpact, ColOutcome}
	for _, c := range required {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("required column %q not found in header", c)
		}
	}

	pick := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var ee []str.Event
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ee = append(ee, str.Event{
			Incident:    pick(row, ColIncident),
			Date:        pick(row, ColDate),
			Month:       pick(row, ColMonth),
			Year:        pick(row, ColYear),
			Country:     pick(row, ColCountry),
			EventType:   pick(row, ColType),
			Place:       pick(row, ColPlace),
			Impact:      pick(row, ColImpact),
			Population:  pick(row, ColPopulation),
			Responsible: pick(row, ColResponsible),
			Outcome:     pick(row, ColOutcome),
		})
	}
	return ee, nil
}

// Documents - the per-event text fed to the topic model; the impact narrative is the
// only free-text column with enough vocabulary to model on
func Documents(ee []str.Event) []string {
	dd := make([]string, len(ee))
	for i := range ee {
		dd[i] = ee[i].Impact
	}
	return dd
}
