// README: Itinerary service renders the prompt and performs the single completion call.
package itinerary

import (
	"context"
	"log"
	"time"

	"tripsight/internal/ai"
)

// PlaceHinter suggests place names to mention in the prompt.
type PlaceHinter interface {
	Hints(ctx context.Context, destination string, interests []string) ([]string, error)
}

// Recorder receives one Outcome per Generate call.
type Recorder interface {
	Record(ctx context.Context, o Outcome)
}

// DefaultHintTimeout bounds the place-hint lookup when Options.HintTimeout is unset.
const DefaultHintTimeout = 5 * time.Second

type Options struct {
	// MaxDays caps TripRequest.Days when positive.
	MaxDays int
	// Timeout bounds the completion call when positive.
	Timeout time.Duration
	// HintTimeout bounds the Hints lookup; zero means DefaultHintTimeout.
	HintTimeout time.Duration
	Hints       PlaceHinter
	Recorder    Recorder
}

type Service struct {
	provider ai.LLMProvider
	opts     Options
}

func NewService(provider ai.LLMProvider, opts Options) *Service {
	return &Service{provider: provider, opts: opts}
}

// Validate applies the same checks Generate runs before calling the provider.
func (s *Service) Validate(req TripRequest) error {
	return req.Validate(s.opts.MaxDays)
}

// Generate validates req, renders the prompt, and returns the first completion
// choice unmodified. Every call reaches the provider at most once; nothing is cached.
func (s *Service) Generate(ctx context.Context, req TripRequest) (Response, error) {
	start := time.Now()
	log.Printf("itinerary: received request destination=%q interests=%q days=%d", req.Destination, req.Interests, req.Days)

	if err := req.Validate(s.opts.MaxDays); err != nil {
		log.Printf("itinerary: rejected request: %v", err)
		s.record(ctx, req, StatusInvalid, err, start)
		return Response{}, err
	}

	prompt := BuildPrompt(req)
	if s.opts.Hints != nil {
		prompt = withPlaceHints(prompt, s.placeHints(ctx, req))
	}

	callCtx := ctx
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	text, err := s.provider.Complete(callCtx, SystemInstruction, prompt)
	if err != nil {
		log.Printf("itinerary: error generating itinerary: %v", err)
		s.record(ctx, req, StatusUpstreamError, err, start)
		return Response{}, &UpstreamError{Err: err}
	}

	s.record(ctx, req, StatusOK, nil, start)
	return Response{Itinerary: text}, nil
}

func (s *Service) record(ctx context.Context, req TripRequest, status string, err error, start time.Time) {
	if s.opts.Recorder == nil {
		return
	}
	s.opts.Recorder.Record(ctx, Outcome{
		Request:   req,
		Status:    status,
		Err:       err,
		LatencyMs: time.Since(start).Milliseconds(),
	})
}

func (s *Service) placeHints(ctx context.Context, req TripRequest) []string {
	timeout := s.opts.HintTimeout
	if timeout <= 0 {
		timeout = DefaultHintTimeout
	}
	hintCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	places, err := s.opts.Hints.Hints(hintCtx, req.Destination, req.Interests)
	if err != nil {
		log.Printf("itinerary: place hints unavailable: %v", err)
		return nil
	}
	return places
}
