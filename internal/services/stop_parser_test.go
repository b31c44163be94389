package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trippy/internal/models/response_models"
)

const eiffelEntry = `1. Stop Name: Eiffel Tower, Paris
   - Address: Champ de Mars, 5 Avenue Anatole France, 75007 Paris, France
   - Time: 9:00 AM - 10:30 AM
   - Activity: Visit and explore the Eiffel Tower.
   - Travel Method: Taxi
   - Travel Time: 15 minutes
   - Cost: 25 Euros
   - Additional Notes: You can go up the tower for an additional fee.
`

const louvreEntry = `2. Stop Name: Louvre Museum
   - Address: Rue de Rivoli, 75001 Paris, France
   - Time: 11:00 AM - 1:30 PM
   - Activity: See the Mona Lisa and the Egyptian wing.
   - Travel Method: Metro
   - Travel Time: 20 minutes
   - Cost: 17 Euros
`

// Missing the Cost line.
const brokenEntry = `3. Stop Name: Le Marais
   - Address: 4th arrondissement, Paris
   - Time: 2:00 PM - 4:00 PM
   - Activity: Walk the old streets.
   - Travel Method: Walk
   - Travel Time: 10 minutes
`

func TestParseStopsWithoutTemplateReturnsEmpty(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t",
		"Request failed: connection refused",
		"Here is a lovely day in Paris. Start at the Eiffel Tower, then lunch.",
		"1. Stop Name: Somewhere\nno labels at all",
	}
	for _, in := range inputs {
		stops := ParseStops(in)
		require.NotNil(t, stops)
		assert.Empty(t, stops, "input %q", in)
	}
}

func TestParseStopsSingleEntryCapturesEveryField(t *testing.T) {
	stops := ParseStops("Here is your plan:\n\n" + eiffelEntry + "\nTotal Estimated Cost: 25 Euros")

	require.Len(t, stops, 1)
	assert.Equal(t, response_models.Stop{
		Name:         "Eiffel Tower, Paris",
		Address:      "Champ de Mars, 5 Avenue Anatole France, 75007 Paris, France",
		StartTime:    "9:00 AM",
		EndTime:      "10:30 AM",
		Activity:     "Visit and explore the Eiffel Tower.",
		TravelMethod: "Taxi",
		TravelTime:   "15 minutes",
		Cost:         "25 Euros",
	}, stops[0])
}

func TestParseStopsSkipsMalformedEntryWithoutSwallowingNeighbours(t *testing.T) {
	// The broken entry sits between two good ones.
	text := eiffelEntry + "\n" + brokenEntry + "\n" + strings.Replace(louvreEntry, "2.", "4.", 1)

	stops := ParseStops(text)

	require.Len(t, stops, 2)
	assert.Equal(t, "Eiffel Tower, Paris", stops[0].Name)
	assert.Equal(t, "Louvre Museum", stops[1].Name)
	assert.Equal(t, "17 Euros", stops[1].Cost)
}

func TestParseStopsSkipsMalformedTime(t *testing.T) {
	text := strings.Replace(eiffelEntry, "9:00 AM - 10:30 AM", "morning until late morning", 1) + louvreEntry

	stops := ParseStops(text)

	require.Len(t, stops, 1)
	assert.Equal(t, "Louvre Museum", stops[0].Name)
}

func TestParseStopsToleratesCaseWhitespaceAndMarkdown(t *testing.T) {
	text := "**1. stop name:**   Sainte-Chapelle  \r\n" +
		"* ADDRESS :  8 Bd du Palais, 75001 Paris\r\n" +
		"\r\n" +
		"    -   time:9:30am  -  10:15 am\r\n" +
		"- Activity: Admire the stained glass.\r\n" +
		"  Arrive early, the queue grows fast.\r\n" +
		"- travel   method: walk\r\n" +
		"- Travel Time: 5 mins\r\n" +
		"- Cost:\r\n"

	stops := ParseStops(text)

	require.Len(t, stops, 1)
	s := stops[0]
	assert.Equal(t, "Sainte-Chapelle", s.Name)
	assert.Equal(t, "8 Bd du Palais, 75001 Paris", s.Address)
	assert.Equal(t, "9:30am", s.StartTime)
	assert.Equal(t, "10:15 am", s.EndTime)
	assert.Equal(t, "Admire the stained glass.\n  Arrive early, the queue grows fast.", s.Activity)
	assert.Equal(t, "walk", s.TravelMethod)
	assert.Equal(t, "5 mins", s.TravelTime)
	assert.Equal(t, "", s.Cost)
}

func TestParseStopsKeepsEmptyAddress(t *testing.T) {
	text := strings.Replace(louvreEntry, "Rue de Rivoli, 75001 Paris, France", "", 1)

	stops := ParseStops(text)

	require.Len(t, stops, 1)
	assert.Empty(t, stops[0].Address)
	assert.Equal(t, "11:00 AM", stops[0].StartTime)
}

func TestParseStopsPreservesOrder(t *testing.T) {
	stops := ParseStops(louvreEntry + eiffelEntry)

	require.Len(t, stops, 2)
	assert.Equal(t, "Louvre Museum", stops[0].Name)
	assert.Equal(t, "Eiffel Tower, Paris", stops[1].Name)
}

func TestSchemaTemplateExampleParses(t *testing.T) {
	stops := ParseStops(StopSchemaTemplate)

	// The "Format" block uses placeholders and must not match; the example must.
	require.Len(t, stops, 1)
	assert.Equal(t, "Eiffel Tower, Paris", stops[0].Name)
}
