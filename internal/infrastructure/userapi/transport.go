package userapi

import (
	"fmt"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-form/internal/infrastructure/metrics"
)

type (
	// Responder executes a single request.
	Responder func(*http.Request) (*http.Response, error)
	// Middleware wraps a Responder with extra behaviour.
	Middleware func(next Responder) Responder

	Transport struct {
		base       http.RoundTripper
		middleware []Middleware
	}
)

// NewTransport chains middleware in front of base; the first middleware runs first.
func NewTransport(base http.RoundTripper, middleware ...Middleware) *Transport {
	if base == nil {
		base = DefaultPooledTransport()
	}
	return &Transport{base: base, middleware: middleware}
}

func (t *Transport) Use(middleware ...Middleware) {
	t.middleware = append(t.middleware, middleware...)
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	h := Responder(t.base.RoundTrip)
	for i := len(t.middleware) - 1; i >= 0; i-- {
		h = t.middleware[i](h)
	}
	return h(req)
}

// DefaultPooledTransport mirrors http.DefaultTransport without sharing it.
func DefaultPooledTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
		MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
	}
}

// UserAgent sets "<app>/<version>" on every request.
func UserAgent(app, version string) Middleware {
	userAgent := fmt.Sprintf("%s/%s", app, version)
	return func(next Responder) Responder {
		return func(req *http.Request) (*http.Response, error) {
			req.Header.Set("User-Agent", userAgent)
			return next(req)
		}
	}
}

// RequestLog logs every outbound call; failures are logged at error level.
func RequestLog(logger *zap.Logger) Middleware {
	return func(next Responder) Responder {
		return func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next(req)

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("url", req.URL.Redacted()),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Error("userapi request failed", append(fields, zap.Error(err))...)
				return resp, err
			}

			fields = append(fields, zap.Int("status", resp.StatusCode))
			if resp.StatusCode >= http.StatusBadRequest {
				logger.Error("userapi request rejected", fields...)
			} else {
				logger.Debug("userapi request", fields...)
			}

			return resp, nil
		}
	}
}

// RequestCounter counts outbound calls.
func RequestCounter(mCounter *prometheus.CounterVec) Middleware {
	return func(next Responder) Responder {
		return func(req *http.Request) (*http.Response, error) {
			metrics.Inc(mCounter, metrics.UserAPIRequests)
			return next(req)
		}
	}
}
