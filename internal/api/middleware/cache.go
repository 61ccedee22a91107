package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kvasnikov/workorders/internal/domain/providers"
)

// CacheConfig holds cache configuration for a route
type CacheConfig struct {
	TTLSeconds int
	Enabled    bool
}

// CacheMiddleware caches collection GET responses and invalidates the
// collection entry whenever a write lands on the same resource, so list
// responses never serve deleted or stale records longer than one write.
type CacheMiddleware struct {
	cache        providers.CacheProvider
	routeConfigs map[string]CacheConfig
	dependents   map[string][]string
}

// NewCacheMiddleware creates a new cache middleware
func NewCacheMiddleware(cache providers.CacheProvider) *CacheMiddleware {
	return &CacheMiddleware{
		cache: cache,
		routeConfigs: map[string]CacheConfig{
			"/users":  {TTLSeconds: 60, Enabled: true},
			"/orders": {TTLSeconds: 60, Enabled: true},
			"/offers": {TTLSeconds: 60, Enabled: true},
		},
		// the orders listing embeds resolved user names, so a user
		// write stales it too
		dependents: map[string][]string{
			"/users": {"/orders"},
		},
	}
}

// Middleware returns the cache middleware handler
func (m *CacheMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.cache == nil {
			next.ServeHTTP(w, r)
			return
		}

		if r.Method != http.MethodGet {
			m.serveWriteAndInvalidate(next, w, r)
			return
		}

		config, ok := m.routeConfigs[r.URL.Path]
		if !ok || !config.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		cacheKey := m.generateCacheKey(r.Method, r.URL.Path)

		if cached, err := m.cache.Get(r.Context(), cacheKey); err == nil {
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		w.Header().Set("X-Cache", "MISS")
		recorder := &responseRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			body:           &bytes.Buffer{},
		}

		next.ServeHTTP(recorder, r)

		if recorder.statusCode == http.StatusOK && recorder.body.Len() > 0 {
			if err := m.cache.Set(r.Context(), cacheKey, recorder.body.Bytes(), config.TTLSeconds); err != nil {
				log.Debug().Err(err).Str("key", cacheKey).Msg("failed to cache response")
			}
		}
	})
}

// serveWriteAndInvalidate passes the write through and, when it succeeds,
// drops the cached collection listing it may have invalidated.
func (m *CacheMiddleware) serveWriteAndInvalidate(next http.Handler, w http.ResponseWriter, r *http.Request) {
	rw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
	next.ServeHTTP(rw, r)

	if rw.statusCode >= http.StatusBadRequest {
		return
	}

	collection := collectionPath(r.URL.Path)
	if _, ok := m.routeConfigs[collection]; !ok {
		return
	}

	for _, stale := range append([]string{collection}, m.dependents[collection]...) {
		key := m.generateCacheKey(http.MethodGet, stale)
		if err := m.cache.Delete(r.Context(), key); err != nil {
			log.Debug().Err(err).Str("key", key).Msg("failed to invalidate cached listing")
		}
	}
}

// collectionPath strips the item id segment: "/orders/7" becomes "/orders".
func collectionPath(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if idx := strings.Index(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return "/" + trimmed
}

func (m *CacheMiddleware) generateCacheKey(method, path string) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s:%s", method, path)))
	return "http:cache:" + hex.EncodeToString(hash[:])
}

// responseRecorder captures the response body for caching
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	r.body.Write(data)
	return r.ResponseWriter.Write(data)
}
