//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/labstack/echo/v4"

	"crisiscompass/internal/topics"
	"crisiscompass/internal/vv"
)

//
// CHARTS
//

const (
	CHRTWIDTH  = "1200px"
	CHRTHEIGHT = "600px"
)

// RtTopicChart - a bar chart of the topics: how many events each topic dominates and how much weight it carries
func RtTopicChart(c echo.Context) error {
	// see https://echarts.apache.org/en/option.html#series-bar

	k := len(TheCorpus.Labels)
	counts := topics.DominantCounts(TheCorpus.Dists, k)
	weights := topics.ScaledWeights(TheCorpus.Dists, k)

	var cc []opts.BarData
	var ww []opts.BarData
	for i := 0; i < k; i++ {
		cc = append(cc, opts.BarData{Value: counts[i]})
		ww = append(ww, opts.BarData{Value: weights[i]})
	}

	xx := make([]string, k)
	for i := range xx {
		xx[i] = fmt.Sprintf("Topic %d", i+1)
	}

	tit := opts.Title{
		Title:    fmt.Sprintf("%s: topic distribution across %d events", vv.MYNAME, len(TheCorpus.Events)),
		Subtitle: fmt.Sprintf("hover a bar for its value; labels run 1 through %d", k),
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
		charts.WithTitleOpts(tit),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)

	bar.SetXAxis(xx).
		AddSeries("events dominated", cc).
		AddSeries("scaled weight", ww)

	var buf bytes.Buffer
	e := bar.Render(&buf)
	chke(e)

	return c.HTML(http.StatusOK, buf.String())
}
