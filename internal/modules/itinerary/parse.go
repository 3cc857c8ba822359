package itinerary

import (
	"strings"
)

// TimePeriods are the section headers the prompt asks the model to use, in order.
var TimePeriods = []string{"Morning", "Afternoon", "Evening", "Night"}

// Day is one "Day N" block of a generated itinerary.
type Day struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section is one time period of a day and its activities.
type Section struct {
	Period     string   `json:"period"`
	Activities []string `json:"activities"`
}

// ParseDays reads itinerary text written in the Day/period/activity layout.
// Lines that fit none of the three shapes are skipped, and text before the first
// day header is ignored. It never fails: malformed text yields fewer or emptier days.
func ParseDays(text string) []Day {
	var (
		days    []Day
		day     *Day
		section *Section
	)
	flushSection := func() {
		if day != nil && section != nil {
			day.Sections = append(day.Sections, *section)
		}
		section = nil
	}
	flushDay := func() {
		flushSection()
		if day != nil {
			days = append(days, *day)
		}
		day = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		header := strings.Trim(line, "*# ")

		if isDayHeader(header) {
			flushDay()
			day = &Day{Title: strings.TrimSuffix(header, ":")}
			continue
		}
		if day == nil {
			continue
		}
		if period, ok := timePeriod(header); ok {
			flushSection()
			section = &Section{Period: period}
			continue
		}
		if strings.HasPrefix(line, "-") && section != nil {
			activity := strings.TrimSpace(strings.TrimLeft(line, "- "))
			if activity != "" {
				section.Activities = append(section.Activities, activity)
			}
		}
	}
	flushDay()
	return days
}

func isDayHeader(line string) bool {
	rest, ok := strings.CutPrefix(line, "Day ")
	return ok && rest != "" && rest[0] >= '0' && rest[0] <= '9'
}

func timePeriod(line string) (string, bool) {
	for _, p := range TimePeriods {
		if strings.HasPrefix(line, p+":") {
			return p, true
		}
	}
	return "", false
}
