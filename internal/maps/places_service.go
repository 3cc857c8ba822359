package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

const (
	minRating         = 4.0
	placesPerInterest = 3
	maxInterests      = 5
)

// Place represents a simplified location result.
type Place struct {
	Name             string
	Address          string
	Rating           float32
	PlaceID          string
	UserRatingsTotal int
}

// textSearcher is the subset of *maps.Client used here.
type textSearcher interface {
	TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error)
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client textSearcher
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SearchNearby returns up to three well-rated places matching query in destination.
func (s *PlacesService) SearchNearby(ctx context.Context, destination, query string) ([]Place, error) {
	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query: fmt.Sprintf("%s in %s", query, destination),
	})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Place
	for _, result := range resp.Results {
		if result.Rating < minRating {
			continue
		}
		results = append(results, Place{
			Name:             result.Name,
			Address:          result.FormattedAddress,
			Rating:           result.Rating,
			PlaceID:          result.PlaceID,
			UserRatingsTotal: result.UserRatingsTotal,
		})
		if len(results) >= placesPerInterest {
			break
		}
	}
	return results, nil
}

// Hints implements itinerary.PlaceHinter: it searches each interest near the
// destination and returns distinct place names. A failed interest is skipped;
// an error is returned only when every search failed.
func (s *PlacesService) Hints(ctx context.Context, destination string, interests []string) ([]string, error) {
	seen := make(map[string]bool)
	var (
		names   []string
		lastErr error
		tried   int
	)
	for _, interest := range interests {
		interest = strings.TrimSpace(interest)
		if interest == "" {
			continue
		}
		if tried == maxInterests {
			break
		}
		tried++

		places, err := s.SearchNearby(ctx, destination, interest)
		if err != nil {
			lastErr = err
			continue
		}
		for _, p := range places {
			if seen[p.PlaceID] {
				continue
			}
			seen[p.PlaceID] = true
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return names, nil
}
