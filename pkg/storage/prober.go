// Package storage verifies externally stored artifact payloads. The control
// plane never proxies artifact bytes; it only confirms a payload_ref resolves
// before accepting an event that points at it.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

var (
	// ErrArtifactNotFound means the store answered authoritatively that the
	// ref does not exist.
	ErrArtifactNotFound = errors.New("artifact not found in storage")

	// ErrStorageUnavailable covers transport failures, 5xx answers, and a
	// tripped breaker.
	ErrStorageUnavailable = errors.New("artifact storage unavailable")
)

// errNotFound marks a 404 inside the breaker: a successful probe of a
// missing object, not a storage failure.
var errNotFound = errors.New("head returned 404")

const probeTimeout = 10 * time.Second

// objectKeySlot is the substitution marker an operator may embed in the
// configured HEAD URL. URLs without the marker get the key appended as an
// object_key query parameter instead.
const objectKeySlot = "{object_key}"

// Prober issues HEAD requests against the artifact store, behind a circuit
// breaker so a dead store fails intake fast instead of stalling every writer.
type Prober struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewProber builds a prober for the given storage base URL. An empty base URL
// yields a nil prober; callers treat that as "probing disabled".
func NewProber(baseURL string, logger *slog.Logger) *Prober {
	if baseURL == "" {
		return nil
	}
	settings := gobreaker.Settings{
		Name:    "artifact-storage-head",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("artifact storage breaker state change",
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}
	return &Prober{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: probeTimeout},
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// State reports the breaker state for health and metrics surfaces.
func (p *Prober) State() gobreaker.State {
	return p.breaker.State()
}

// Probe confirms that ref resolves in the artifact store. A 404 is reported
// as ErrArtifactNotFound and does not count against the breaker.
func (p *Prober) Probe(ctx context.Context, ref string) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.head(ctx, ref)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errNotFound):
		return ErrArtifactNotFound
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		p.logger.Warn("artifact probe rejected by open breaker", slog.String("ref", ref))
		return ErrStorageUnavailable
	default:
		p.logger.Warn("artifact probe failed",
			slog.String("ref", ref),
			slog.String("error", err.Error()))
		return ErrStorageUnavailable
	}
}

func (p *Prober) head(ctx context.Context, ref string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.refURL(ref), nil)
	if err != nil {
		return fmt.Errorf("building probe request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("artifact head request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		return fmt.Errorf("artifact storage returned %d", resp.StatusCode)
	}
}

func (p *Prober) refURL(ref string) string {
	if strings.Contains(p.baseURL, objectKeySlot) {
		return strings.ReplaceAll(p.baseURL, objectKeySlot, url.PathEscape(ref))
	}
	sep := "?"
	if strings.Contains(p.baseURL, "?") {
		sep = "&"
	}
	return p.baseURL + sep + "object_key=" + url.QueryEscape(ref)
}
