package option

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"emergencycard/internal/logging"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Source supplies the option list. Fetch never fails loudly: any problem
// yields the empty Result.
type Source interface {
	Fetch(ctx context.Context) Result
}

// HTTPSource fetches options with a single GET. There is no retry and no
// client-side timeout; cancel ctx to abandon the request.
type HTTPSource struct {
	URL    string
	Client *http.Client
	Tracer trace.Tracer
}

// Ensure HTTPSource implements Source.
var _ Source = (*HTTPSource)(nil)

// NewHTTPSource creates a source for url using the default HTTP client.
func NewHTTPSource(url string, tracer trace.Tracer) *HTTPSource {
	return &HTTPSource{URL: url, Client: http.DefaultClient, Tracer: tracer}
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) Result {
	log := logging.FromContext(ctx)
	ctx, span := s.tracer().Start(ctx, "option.fetch",
		trace.WithAttributes(attribute.String("http.url", s.URL)))
	defer span.End()

	options, err := s.get(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn().Err(err).Str("url", s.URL).Msg("option fetch failed")
		return Empty()
	}

	span.SetAttributes(attribute.Int("option.count", len(options)))
	log.Debug().Str("url", s.URL).Int("count", len(options)).Msg("options loaded")
	return Loaded(options)
}

func (s *HTTPSource) get(ctx context.Context, span trace.Span) ([]Option, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get options: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get options: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read options body: %w", err)
	}
	return Normalize(body)
}

func (s *HTTPSource) tracer() trace.Tracer {
	if s.Tracer != nil {
		return s.Tracer
	}
	return otel.Tracer("emergencycard/option")
}

// StaticSource returns a fixed Result. Useful for demos and tests.
type StaticSource struct {
	Result Result
}

// Fetch implements Source.
func (s StaticSource) Fetch(context.Context) Result {
	return s.Result
}
