//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"crisiscompass/internal/lnch"
	"crisiscompass/internal/vv"
)

// StartEchoServer - start serving; this blocks and does not return while the program remains alive
func StartEchoServer() {
	// https://echo.labstack.com/guide/

	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "i: ${remote_ip}\t r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
	)

	//
	// SETUP
	//

	e := echo.New()

	e.Server.ReadTimeout = vv.TIMEOUTRD
	e.Server.WriteTimeout = vv.TIMEOUTWR

	if lnch.Config.EchoLog == 3 {
		e.Use(middleware.Logger())
	} else if lnch.Config.EchoLog == 2 {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT}))
	} else if lnch.Config.EchoLog == 1 {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(vv.MAXECHOREQPERSECONDPERIP)))

	e.Use(middleware.Recover())

	if lnch.Config.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	//
	// CRISISCOMPASS ROUTES
	//

	//
	// [a] frontpage ("rt-frontpage.go")
	//

	e.GET("/", RtFrontpage)

	//
	// [b] browsing ("rt-browse.go")
	//

	e.GET("/browse/topic/:idx", RtBrowseTopic)   // '/browse/topic/3'
	e.GET("/browse/country/:c", RtBrowseCountry) // '/browse/country/India'
	e.GET("/browse/event/:idx", RtBrowseEvent)   // '/browse/event/0'
	e.GET("/browse/back", RtBrowseBack)          // pops one level
	e.GET("/browse/reset", RtBrowseReset)        // back to the topic screen

	//
	// [c] charts ("rt-chart.go")
	//

	e.GET("/chart", RtTopicChart)

	//
	// [d] json ("rt-browse.go")
	//

	e.GET("/json/state", RtJSONState)
	e.GET("/json/about", RtAbout)
	e.GET("/about", RtAbout)

	e.HideBanner = true
	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%d", lnch.Config.HostIP, lnch.Config.HostPort)))
}
