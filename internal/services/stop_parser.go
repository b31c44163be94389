package services

import (
	"regexp"
	"strings"

	"trippy/internal/models/response_models"
)

// StopSchemaTemplate is appended to every itinerary prompt. stopEntryPattern
// below matches exactly this layout; change both together or extraction
// silently drops to zero stops.
const StopSchemaTemplate = `
Please provide the itinerary in the following structured format. Each stop should include a location name and any necessary address or details for accurate mapping.

Format:
1. Stop Name: [Name of the Stop, e.g., "Eiffel Tower, Paris" or "Central Park, New York"]
   - Address: [Full address or location description if available, e.g., "Champ de Mars, 5 Avenue Anatole France, 75007 Paris, France"]
   - Time: [Start Time] - [End Time]
   - Activity: [Brief description of the activity]
   - Travel Method: [Mode of travel, e.g., taxi, walk, subway]
   - Travel Time: [Approximate travel time, e.g., "15 minutes"]
   - Cost: [Cost in local currency, if applicable]
   - Additional Notes: [Any additional information, e.g., "pre-booking required"]

Example:
1. Stop Name: Eiffel Tower, Paris
   - Address: Champ de Mars, 5 Avenue Anatole France, 75007 Paris, France
   - Time: 9:00 AM - 10:30 AM
   - Activity: Visit and explore the Eiffel Tower.
   - Travel Method: Taxi
   - Travel Time: 15 minutes
   - Cost: 25 Euros
   - Additional Notes: You can go up the tower for an additional fee.

Continue in this format for all stops in the itinerary.
Use a 12-hour clock with AM/PM for every time and give travel time in minutes.
Include a final line with "Total Estimated Cost: [Total cost for the day]" if applicable.
`

var (
	stopEntryHeader = regexp.MustCompile(`(?im)^[ \t]*#*[ \t]*\d+\.[ \t]*stop[ \t]+name[ \t]*:`)

	stopEntryPattern = regexp.MustCompile(`(?is)\A\s*#*[ \t]*\d+\.[ \t]*stop[ \t]+name[ \t]*:[ \t]*(.+?)` +
		stopLabel("address") + `(.*?)` +
		stopLabel("time") + `(\d{1,2}:\d{2}[ \t]?[ap]m)[ \t]*(?:-|–|—|to)[ \t]*(\d{1,2}:\d{2}[ \t]?[ap]m)[ \t]*` +
		stopLabel("activity") + `(.+?)` +
		stopLabel("travel method") + `(.+?)` +
		stopLabel("travel time") + `(\d+[ \t]*(?:minutes?|mins?))[^\n]*` +
		stopLabel("cost") + `([^\n]*)`)

	markdownNoise = strings.NewReplacer("\r\n", "\n", "**", "", "__", "")
)

// stopLabel matches the start of a labelled line, e.g. "\n   - Travel Method: ".
func stopLabel(name string) string {
	return `\n\s*[-*•]?[ \t]*` + strings.ReplaceAll(name, " ", `[ \t]+`) + `[ \t]*:[ \t]*`
}

// ParseStops extracts every well-formed stop entry from free-text model output,
// in order of appearance. Entries that do not fit the template are skipped;
// the result is empty, never nil-with-error, for text without any match.
func ParseStops(response string) []response_models.Stop {
	text := markdownNoise.Replace(response)

	stops := make([]response_models.Stop, 0)
	for _, entry := range splitStopEntries(text) {
		m := stopEntryPattern.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		stop := response_models.Stop{
			Name:         strings.TrimSpace(m[1]),
			Address:      strings.TrimSpace(m[2]),
			StartTime:    strings.TrimSpace(m[3]),
			EndTime:      strings.TrimSpace(m[4]),
			Activity:     strings.TrimSpace(m[5]),
			TravelMethod: strings.TrimSpace(m[6]),
			TravelTime:   strings.TrimSpace(m[7]),
			Cost:         strings.TrimSpace(m[8]),
		}
		if stop.Name == "" {
			continue
		}
		stops = append(stops, stop)
	}
	return stops
}

// splitStopEntries cuts text at every "N. Stop Name:" line so that a broken
// entry cannot swallow the one after it.
func splitStopEntries(text string) []string {
	bounds := stopEntryHeader.FindAllStringIndex(text, -1)
	entries := make([]string, 0, len(bounds))
	for i, b := range bounds {
		end := len(text)
		if i+1 < len(bounds) {
			end = bounds[i+1][0]
		}
		entries = append(entries, text[b[0]:end])
	}
	return entries
}
