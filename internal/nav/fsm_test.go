//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crisiscompass/internal/str"
	"crisiscompass/internal/topics"
)

// a corpus literal is enough here; nothing below needs the fitted model itself
func testcorpus() *topics.Corpus {
	return &topics.Corpus{
		Events: []str.Event{
			{Incident: "Great Famine", Country: "India", Year: "1876", EventType: "Famine"},
			{Incident: "Treaty of Versailles", Country: "France", Year: "1919", EventType: "Treaty"},
			{Incident: "Bengal Famine", Country: "India", Year: "1943", EventType: "Famine"},
		},
		Labels: []string{"Hunger", "Diplomacy"},
		Dists: [][]float64{
			{0.8, 0.2},
			{0.05, 0.95},
			{0.7, 0.3},
		},
	}
}

func TestFullWalk(t *testing.T) {
	cr := testcorpus()
	s := State{}

	s, err := Transition(cr, s, Action{Kind: ActSelectTopic, Index: 0})
	require.NoError(t, err)
	assert.Equal(t, StageCountries, s.Stage)
	assert.Equal(t, 0, s.Topic)

	countries := CountryChoices(cr, s)
	require.Equal(t, []string{"India"}, countries)

	s, err = Transition(cr, s, Action{Kind: ActSelectCountry, Value: "India"})
	require.NoError(t, err)
	assert.Equal(t, StageEvents, s.Stage)

	events := EventChoices(cr, s)
	require.Len(t, events, 2)
	assert.Equal(t, "Great Famine", events[0].Incident)
	assert.Equal(t, "Bengal Famine", events[1].Incident)

	s, err = Transition(cr, s, Action{Kind: ActSelectEvent, Index: 1})
	require.NoError(t, err)
	assert.Equal(t, StageDetail, s.Stage)

	ev, ok := Detail(cr, s)
	require.True(t, ok)
	assert.Equal(t, "Bengal Famine", ev.Incident)
}

func TestBackPopsOneLevel(t *testing.T) {
	cr := testcorpus()
	s := State{Stage: StageDetail, Topic: 0, Country: "India", Event: 1}

	s, err := Transition(cr, s, Action{Kind: ActBack})
	require.NoError(t, err)
	assert.Equal(t, StageEvents, s.Stage)
	assert.Equal(t, "India", s.Country)

	s, err = Transition(cr, s, Action{Kind: ActBack})
	require.NoError(t, err)
	assert.Equal(t, StageCountries, s.Stage)
	assert.Equal(t, 0, s.Topic)

	s, err = Transition(cr, s, Action{Kind: ActBack})
	require.NoError(t, err)
	assert.Equal(t, StageTopics, s.Stage)

	// already at the top; back stays put
	s, err = Transition(cr, s, Action{Kind: ActBack})
	require.NoError(t, err)
	assert.Equal(t, StageTopics, s.Stage)
}

func TestResetFromAnywhere(t *testing.T) {
	cr := testcorpus()
	s := State{Stage: StageDetail, Topic: 1, Country: "France", Event: 0}

	s, err := Transition(cr, s, Action{Kind: ActReset})
	require.NoError(t, err)
	assert.Equal(t, State{}, s)
}

func TestStageGating(t *testing.T) {
	cr := testcorpus()

	// an event pick on the topic screen goes nowhere
	s := State{}
	next, err := Transition(cr, s, Action{Kind: ActSelectEvent, Index: 0})
	assert.ErrorIs(t, err, ErrBadTransition)
	assert.Equal(t, s, next)

	// so does a country pick
	next, err = Transition(cr, s, Action{Kind: ActSelectCountry, Value: "India"})
	assert.ErrorIs(t, err, ErrBadTransition)
	assert.Equal(t, s, next)

	// and a topic pick past the end of the labels
	_, err = Transition(cr, s, Action{Kind: ActSelectTopic, Index: 99})
	assert.Error(t, err)
	_, err = Transition(cr, s, Action{Kind: ActSelectTopic, Index: -1})
	assert.Error(t, err)
}

func TestUnknownCountryYieldsEmptyEventList(t *testing.T) {
	cr := testcorpus()
	s := State{Stage: StageCountries, Topic: 0}

	s, err := Transition(cr, s, Action{Kind: ActSelectCountry, Value: "Mars"})
	require.NoError(t, err)
	assert.Equal(t, StageEvents, s.Stage)

	events := EventChoices(cr, s)
	assert.NotNil(t, events)
	assert.Empty(t, events)

	// with no events there is nothing to select
	_, err = Transition(cr, s, Action{Kind: ActSelectEvent, Index: 0})
	assert.Error(t, err)
}

func TestDetailOutsideDetailStage(t *testing.T) {
	cr := testcorpus()

	_, ok := Detail(cr, State{Stage: StageEvents, Topic: 0, Country: "India"})
	assert.False(t, ok)

	_, ok = Detail(cr, State{Stage: StageDetail, Topic: 0, Country: "India", Event: 99})
	assert.False(t, ok)
}

func TestTopicChoices(t *testing.T) {
	cr := testcorpus()

	cc := TopicChoices(cr)
	require.Len(t, cc, 2)
	assert.Equal(t, Choice{Index: 0, Label: "Hunger"}, cc[0])
	assert.Equal(t, Choice{Index: 1, Label: "Diplomacy"}, cc[1])
}
