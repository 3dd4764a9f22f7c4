//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"crisiscompass/internal/nav"
	"crisiscompass/internal/vv"
)

//go:embed emb
var efs embed.FS

//
// ROUTING
//

type fpitem struct {
	Href  string
	Label string
}

type fpdetailrow struct {
	Label string
	Value string
}

type fpdetail struct {
	Name    string
	Rows    []fpdetailrow
	Outcome string
	Tint    string
}

type frontpagedata struct {
	Version   string
	Stage     string
	Title     string
	Prompt    string
	Items     []fpitem
	Detail    *fpdetail
	Empty     string
	CanGoBack bool
}

// the Qt original painted recognized outcomes green, orange or red
var outcometint = map[string]string{
	"positive": "green",
	"mixed":    "orange",
	"negative": "red",
}

// RtFrontpage - send the html for "/"; what you get depends on where the walk stands
func RtFrontpage(c echo.Context) error {
	// will set if missing
	user := readUUIDCookie(c)
	s := AllStates.GetState(user)

	fpd := frontpagedata{
		Version:   vv.VERSION,
		Stage:     s.Stage.String(),
		Title:     "Crisis Compass",
		CanGoBack: s.Stage != nav.StageTopics,
	}

	switch s.Stage {
	case nav.StageTopics:
		fpd.Prompt = "Select a Topic:"
		for _, ch := range nav.TopicChoices(TheCorpus) {
			fpd.Items = append(fpd.Items, fpitem{
				Href:  fmt.Sprintf("/browse/topic/%d", ch.Index),
				Label: fmt.Sprintf("Topic %d: %s", ch.Index+1, ch.Label),
			})
		}
	case nav.StageCountries:
		fpd.Prompt = "Select a Country:"
		for _, co := range nav.CountryChoices(TheCorpus, s) {
			fpd.Items = append(fpd.Items, fpitem{
				Href:  fmt.Sprintf("/browse/country/%s", url.PathEscape(co)),
				Label: co,
			})
		}
	case nav.StageEvents:
		fpd.Prompt = "Recommended Events:"
		ee := nav.EventChoices(TheCorpus, s)
		if len(ee) == 0 {
			fpd.Empty = "No events available for the selected country."
		}
		for i, ev := range ee {
			fpd.Items = append(fpd.Items, fpitem{
				Href:  fmt.Sprintf("/browse/event/%d", i),
				Label: fmt.Sprintf("%d. %s (%s, %s) - %s", i+1, ev.Incident, ev.Year, ev.Country, ev.EventType),
			})
		}
	case nav.StageDetail:
		fpd.Prompt = "Event Details"
		ev, ok := nav.Detail(TheCorpus, s)
		if ok {
			fpd.Detail = &fpdetail{
				Name: ev.Incident,
				Rows: []fpdetailrow{
					{"Date:", ev.Date},
					{"Month:", ev.Month},
					{"Year:", ev.Year},
					{"Country:", ev.Country},
					{"Type of Event:", ev.EventType},
					{"Place Name:", ev.Place},
					{"Impact:", ev.Impact},
					{"Affected Population:", ev.Population},
					{"Important Person/Group Responsible:", ev.Responsible},
				},
				Outcome: ev.Outcome,
				Tint:    outcometint[strings.ToLower(ev.Outcome)],
			}
		}
	}

	f, e := efs.ReadFile("emb/frontpage.html")
	chke(e)

	tmpl, e := template.New("fp").Parse(string(f))
	chke(e)

	var b bytes.Buffer
	chke(tmpl.Execute(&b, fpd))

	return c.HTML(http.StatusOK, b.String())
}
