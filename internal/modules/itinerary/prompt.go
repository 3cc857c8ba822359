package itinerary

import (
	"fmt"
	"strings"
)

// SystemInstruction is the fixed system turn sent with every prompt.
const SystemInstruction = "You are a travel planner. Create concise daily schedules. " +
	"For 1-day trips, focus on essential experiences. " +
	"For multi-day trips, make sure to generate all the days and their plans without skipping any days"

const formatBlock = `Format each day as:
Day X
Morning:
- Activity 1
- Activity 2
- Activity 3

Afternoon:
- Activity 1
- Activity 2
- Activity 3

Evening:
- Activity 1
- Activity 2
- Activity 3

Night:
- Activity 1
- Activity 2
- Activity 3

Rules:
1. Start each day with "Day X"
2. Each time period (Morning/Afternoon/Evening/Night) on its own line with colon
3. Each activity starts with hyphen and space
4. Include 2+ activities per time period
5. Keep activities concise
6. For 1-day trips, focus on essential experiences
7. For multi-day trips, consider travel time between locations`

// BuildPrompt renders the user turn for req. The output depends only on req.
func BuildPrompt(req TripRequest) string {
	return fmt.Sprintf("Create an itinerary for %s for %d days based on interests: %s.\n\n%s",
		req.Destination, req.Days, strings.Join(req.Interests, ", "), formatBlock)
}

// withPlaceHints appends a suggestion line naming places the model may use.
func withPlaceHints(prompt string, places []string) string {
	if len(places) == 0 {
		return prompt
	}
	return prompt + "\n\nConsider including these well-rated places where they fit: " + strings.Join(places, "; ") + "."
}
