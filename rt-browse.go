//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"crisiscompass/internal/mm"
	"crisiscompass/internal/nav"
	"crisiscompass/internal/vv"
)

//
// BROWSING
//

// every route funnels into dispatch(); the handlers only translate the url into an Action

// RtBrowseTopic - pick a topic; '/browse/topic/3'
func RtBrowseTopic(c echo.Context) error {
	idx, e := strconv.Atoi(c.Param("idx"))
	if e != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	return dispatch(c, nav.Action{Kind: nav.ActSelectTopic, Index: idx})
}

// RtBrowseCountry - pick a country; '/browse/country/South%20Africa'
func RtBrowseCountry(c echo.Context) error {
	co, e := url.PathUnescape(c.Param("c"))
	if e != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	return dispatch(c, nav.Action{Kind: nav.ActSelectCountry, Value: co})
}

// RtBrowseEvent - pick an event from the filtered list; '/browse/event/0'
func RtBrowseEvent(c echo.Context) error {
	idx, e := strconv.Atoi(c.Param("idx"))
	if e != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	return dispatch(c, nav.Action{Kind: nav.ActSelectEvent, Index: idx})
}

// RtBrowseBack - pop one level
func RtBrowseBack(c echo.Context) error {
	return dispatch(c, nav.Action{Kind: nav.ActBack})
}

// RtBrowseReset - straight back to the topic screen
func RtBrowseReset(c echo.Context) error {
	return dispatch(c, nav.Action{Kind: nav.ActReset})
}

// dispatch - apply one action to this browser's state; a rejected action leaves the state alone
func dispatch(c echo.Context, a nav.Action) error {
	user := readUUIDCookie(c)
	s := AllStates.GetState(user)

	next, e := nav.Transition(TheCorpus, s, a)
	if e != nil {
		msg(fmt.Sprintf("dispatch() rejected action for %s: %v", user, e), mm.MSGPEEK)
		return c.Redirect(http.StatusFound, "/")
	}

	AllStates.InsertState(user, next)
	return c.Redirect(http.StatusFound, "/")
}

//
// JSON
//

// RtJSONState - the navigation state of this browser
func RtJSONState(c echo.Context) error {
	user := readUUIDCookie(c)
	s := AllStates.GetState(user)

	type js struct {
		Stage   string `json:"stage"`
		Topic   int    `json:"topic"`
		Country string `json:"country"`
		Event   int    `json:"event"`
	}

	return c.JSONPretty(http.StatusOK, js{
		Stage:   s.Stage.String(),
		Topic:   s.Topic,
		Country: s.Country,
		Event:   s.Event,
	}, vv.JSONINDENT)
}

// RtAbout - what the dataset covers
func RtAbout(c echo.Context) error {
	const (
		TITLE = "World Important Events - Ancient to Modern"
		BLURB = "This dataset spans significant historical milestones from ancient times to the modern era, " +
			"covering diverse global incidents. It provides a comprehensive timeline of events that have shaped " +
			"the world, offering insights into wars, cultural shifts, technological advancements, and social movements."
	)

	type js struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Events      int    `json:"events"`
		Topics      int    `json:"topics"`
		Version     string `json:"version"`
	}

	return c.JSONPretty(http.StatusOK, js{
		Title:       TITLE,
		Description: BLURB,
		Events:      len(TheCorpus.Events),
		Topics:      len(TheCorpus.Labels),
		Version:     vv.VERSION,
	}, vv.JSONINDENT)
}
