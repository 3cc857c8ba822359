package maps

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"googlemaps.github.io/maps"
)

type fakeSearcher struct {
	byQuery map[string][]maps.PlacesSearchResult
	fail    map[string]bool
	queries []string
}

func (f *fakeSearcher) TextSearch(_ context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error) {
	f.queries = append(f.queries, r.Query)
	interest := strings.SplitN(r.Query, " in ", 2)[0]
	if f.fail[interest] {
		return maps.PlacesSearchResponse{}, errors.New("OVER_QUERY_LIMIT")
	}
	return maps.PlacesSearchResponse{Results: f.byQuery[interest]}, nil
}

func place(id, name string, rating float32) maps.PlacesSearchResult {
	return maps.PlacesSearchResult{PlaceID: id, Name: name, Rating: rating}
}

func TestHintsFiltersAndDedupes(t *testing.T) {
	f := &fakeSearcher{byQuery: map[string][]maps.PlacesSearchResult{
		"art": {
			place("1", "Louvre", 4.7),
			place("2", "Tiny Gallery", 3.2),
			place("3", "Musée d'Orsay", 4.8),
			place("4", "Orangerie", 4.6),
			place("5", "Rodin", 4.6),
		},
		"food": {
			place("3", "Musée d'Orsay", 4.8),
			place("6", "Le Comptoir", 4.5),
		},
	}}
	svc := &PlacesService{client: f}

	got, err := svc.Hints(context.Background(), "Paris", []string{"art", " ", "food"})
	if err != nil {
		t.Fatalf("Hints: %v", err)
	}
	want := []string{"Louvre", "Musée d'Orsay", "Orangerie", "Le Comptoir"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Hints = %v, want %v", got, want)
	}
	if f.queries[0] != "art in Paris" {
		t.Errorf("query = %q", f.queries[0])
	}
	if len(f.queries) != 2 {
		t.Errorf("blank interests must be skipped, queries = %v", f.queries)
	}
}

func TestHintsPartialFailure(t *testing.T) {
	f := &fakeSearcher{
		byQuery: map[string][]maps.PlacesSearchResult{"food": {place("6", "Le Comptoir", 4.5)}},
		fail:    map[string]bool{"art": true},
	}
	svc := &PlacesService{client: f}

	got, err := svc.Hints(context.Background(), "Paris", []string{"art", "food"})
	if err != nil {
		t.Fatalf("partial failure should not error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Le Comptoir"}) {
		t.Fatalf("Hints = %v", got)
	}

	f.fail["food"] = true
	if _, err := svc.Hints(context.Background(), "Paris", []string{"art", "food"}); err == nil {
		t.Fatal("expected error when every search fails")
	}
}

func TestHintsCapsInterests(t *testing.T) {
	f := &fakeSearcher{}
	svc := &PlacesService{client: f}
	_, _ = svc.Hints(context.Background(), "Rome", []string{"a", "b", "c", "d", "e", "f", "g"})
	if len(f.queries) != maxInterests {
		t.Fatalf("queries = %d, want %d", len(f.queries), maxInterests)
	}
}
