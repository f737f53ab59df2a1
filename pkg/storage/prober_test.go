package storage

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProberProbe(t *testing.T) {
	ctx := context.Background()

	t.Run("2xx resolves via query form", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodHead, r.Method)
			assert.Equal(t, "art_abc123", r.URL.Query().Get("object_key"))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		p := NewProber(srv.URL, slog.Default())
		require.NoError(t, p.Probe(ctx, "art_abc123"))
	})

	t.Run("templated URL substitutes the key", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodHead, r.Method)
			assert.Equal(t, "/artifacts/art_abc123/head", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		p := NewProber(srv.URL+"/artifacts/{object_key}/head", slog.Default())
		require.NoError(t, p.Probe(ctx, "art_abc123"))
	})

	t.Run("404 is not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		p := NewProber(srv.URL, slog.Default())
		assert.ErrorIs(t, p.Probe(ctx, "art_missing"), ErrArtifactNotFound)
	})

	t.Run("5xx is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		p := NewProber(srv.URL, slog.Default())
		assert.ErrorIs(t, p.Probe(ctx, "art_abc123"), ErrStorageUnavailable)
	})

	t.Run("transport failure is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		p := NewProber(srv.URL, slog.Default())
		assert.ErrorIs(t, p.Probe(ctx, "art_abc123"), ErrStorageUnavailable)
	})

	t.Run("disabled prober is nil", func(t *testing.T) {
		assert.Nil(t, NewProber("", slog.Default()))
	})
}

func TestProberRefURL(t *testing.T) {
	cases := map[string]struct {
		base string
		want string
	}{
		"bare base gets a query": {
			base: "http://store",
			want: "http://store?object_key=art_1",
		},
		"existing query is extended": {
			base: "http://store/head?tenant=t1",
			want: "http://store/head?tenant=t1&object_key=art_1",
		},
		"template marker is substituted": {
			base: "http://store/artifacts/{object_key}/head",
			want: "http://store/artifacts/art_1/head",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := NewProber(tc.base, slog.Default())
			assert.Equal(t, tc.want, p.refURL("art_1"))
		})
	}
}

func TestProberBreaker(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewProber(srv.URL, slog.Default())

	// Five consecutive failures open the circuit.
	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, p.Probe(ctx, "art_abc123"), ErrStorageUnavailable)
	}
	assert.Equal(t, gobreaker.StateOpen, p.State())

	// Open breaker rejects without touching the store.
	before := calls.Load()
	assert.ErrorIs(t, p.Probe(ctx, "art_abc123"), ErrStorageUnavailable)
	assert.Equal(t, before, calls.Load())
}

func TestProberBreakerIgnoresNotFound(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewProber(srv.URL, slog.Default())
	for i := 0; i < 10; i++ {
		assert.ErrorIs(t, p.Probe(ctx, "art_missing"), ErrArtifactNotFound)
	}
	assert.Equal(t, gobreaker.StateClosed, p.State())
}
