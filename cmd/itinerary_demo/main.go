package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/fatih/color"

	"tripsight/internal/ai"
	"tripsight/internal/config"
	"tripsight/internal/modules/itinerary"
)

func main() {
	destination := flag.String("destination", "Paris", "trip destination")
	interests := flag.String("interests", "art,food", "comma-separated interests")
	days := flag.Int("days", 2, "trip length in days")
	raw := flag.Bool("raw", false, "print the model text without parsing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range cfg.Warnings() {
		log.Printf("warning: %s", w)
	}

	provider, err := ai.NewProvider(cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	svc := itinerary.NewService(provider, itinerary.Options{
		MaxDays: cfg.Itinerary.MaxDays,
		Timeout: cfg.LLM.Timeout,
	})

	req := itinerary.TripRequest{
		Destination: *destination,
		Interests:   splitInterests(*interests),
		Days:        *days,
	}
	resp, err := svc.Generate(context.Background(), req)
	if err != nil {
		log.Fatalf("Error generating itinerary: %v", err)
	}

	if *raw {
		fmt.Println(resp.Itinerary)
		return
	}

	title := color.New(color.FgCyan, color.Bold)
	period := color.New(color.FgYellow)
	parsed := itinerary.ParseDays(resp.Itinerary)
	if len(parsed) == 0 {
		color.New(color.FgRed).Println("Model reply did not follow the day layout; raw text follows.")
		fmt.Println(resp.Itinerary)
		return
	}
	for _, d := range parsed {
		title.Println(d.Title)
		for _, s := range d.Sections {
			period.Printf("  %s\n", s.Period)
			for _, a := range s.Activities {
				fmt.Printf("    • %s\n", a)
			}
		}
		fmt.Println()
	}
}

// splitInterests trims and de-duplicates a comma-separated list, keeping order.
func splitInterests(s string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}
