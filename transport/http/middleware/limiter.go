package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"grandplaza/shared"
	"grandplaza/shared/cache"
	"grandplaza/shared/constant"
	"grandplaza/shared/timezone"
	"grandplaza/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit    = "limiter"
	headerRetryAfter     = "Retry-After"
	unknownUserAgent     = "unknown"
	defaultLimiterWindow = 60
)

// RateLimit counts requests per client in fixed windows of WindowSeconds.
// A cache outage lets requests through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := a.config.App.RateLimiter
			if !limiter.Enable || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)

				return
			}

			window := limiter.WindowSeconds
			if window <= 0 {
				window = defaultLimiterWindow
			}

			now := timezone.Now().Unix()
			bucket := strconv.FormatInt(now/int64(window), 10)
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r), bucket)

			var count int

			err := a.cache.Get(r.Context(), cacheKey, &count)
			if err != nil && !errors.Is(err, cache.Nil) {
				log.Warn().Err(err).Msg("rate limiter unavailable, letting request through")
				next.ServeHTTP(w, r)

				return
			}

			count++

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limiter.MaxRequests-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(window))

			if count > limiter.MaxRequests {
				w.Header().Set(headerRetryAfter, strconv.FormatInt(int64(window)-now%int64(window), 10))
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(r.Context(), cacheKey, count, window); err != nil {
				log.Warn().Err(err).Str("key", cacheKey).Msg("failed to record request count")
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return unknownUserAgent
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
