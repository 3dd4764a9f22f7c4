//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package nav

import (
	"errors"
	"fmt"

	"crisiscompass/internal/gen"
	"crisiscompass/internal/str"
	"crisiscompass/internal/topics"
)

//
// NAVIGATION STATE MACHINE
//

// the browse flow is topic --> country --> event --> detail; "back" pops exactly one level;
// every selectable item maps to an Action value so the dispatch is testable on its own and
// no handler ever closes over a loop variable

type Stage int

const (
	StageTopics Stage = iota
	StageCountries
	StageEvents
	StageDetail
)

func (s Stage) String() string {
	switch s {
	case StageTopics:
		return "topics"
	case StageCountries:
		return "countries"
	case StageEvents:
		return "events"
	case StageDetail:
		return "detail"
	}
	return "unknown"
}

// State - where one browser is in the walk; the zero value is the topic-selection screen
type State struct {
	Stage   Stage
	Topic   int
	Country string
	Event   int
}

type ActionKind int

const (
	ActSelectTopic ActionKind = iota
	ActSelectCountry
	ActSelectEvent
	ActBack
	ActReset
)

// Action - one selectable item expressed as a value
type Action struct {
	Kind  ActionKind
	Index int
	Value string
}

var ErrBadTransition = errors.New("selection does not apply to the current stage")

// Transition - apply one action to a state; on error the state comes back unchanged
func Transition(cr *topics.Corpus, s State, a Action) (State, error) {
	switch a.Kind {
	case ActReset:
		return State{}, nil
	case ActBack:
		return s.back(), nil
	case ActSelectTopic:
		if s.Stage != StageTopics {
			return s, ErrBadTransition
		}
		if a.Index < 0 || a.Index >= len(cr.Labels) {
			return s, fmt.Errorf("no such topic: %d", a.Index)
		}
		return State{Stage: StageCountries, Topic: a.Index}, nil
	case ActSelectCountry:
		if s.Stage != StageCountries {
			return s, ErrBadTransition
		}
		// an unlisted country is allowed through: it just yields the empty event list
		return State{Stage: StageEvents, Topic: s.Topic, Country: a.Value}, nil
	case ActSelectEvent:
		if s.Stage != StageEvents {
			return s, ErrBadTransition
		}
		if a.Index < 0 || a.Index >= len(EventChoices(cr, s)) {
			return s, fmt.Errorf("no such event: %d", a.Index)
		}
		return State{Stage: StageDetail, Topic: s.Topic, Country: s.Country, Event: a.Index}, nil
	}
	return s, ErrBadTransition
}

func (s State) back() State {
	switch s.Stage {
	case StageDetail:
		return State{Stage: StageEvents, Topic: s.Topic, Country: s.Country}
	case StageEvents:
		return State{Stage: StageCountries, Topic: s.Topic}
	case StageCountries:
		return State{}
	}
	// nothing above the topic screen to pop to
	return s
}

// Choice - a topic index with its human-readable label
type Choice struct {
	Index int
	Label string
}

// TopicChoices - one choice per topic
func TopicChoices(cr *topics.Corpus) []Choice {
	cc := make([]Choice, len(cr.Labels))
	for i, l := range cr.Labels {
		cc[i] = Choice{Index: i, Label: l}
	}
	return cc
}

// CountryChoices - the unique countries among the topic-filtered events, first-appearance order
func CountryChoices(cr *topics.Corpus, s State) []string {
	ff := topics.FilterByTopic(cr.Events, cr.Dists, s.Topic)
	names := make([]string, len(ff))
	for i := range ff {
		names[i] = ff[i].Country
	}
	return gen.StableUnique(names)
}

// EventChoices - the topic+country filtered events, original order preserved
func EventChoices(cr *topics.Corpus, s State) []str.Event {
	return topics.FilterByCountry(topics.FilterByTopic(cr.Events, cr.Dists, s.Topic), s.Country)
}

// Detail - the event the state points at; false when it does not point at one
func Detail(cr *topics.Corpus, s State) (str.Event, bool) {
	if s.Stage != StageDetail {
		return str.Event{}, false
	}
	ff := topics.FilterByCountry(topics.FilterByTopic(cr.Events, cr.Dists, s.Topic), s.Country)
	if s.Event < 0 || s.Event >= len(ff) {
		return str.Event{}, false
	}
	return ff[s.Event], true
}
