package userapi

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testURL = "https://www.example.com/users"

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func okResponse(status int) roundTripFunc {
	return func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader("OK")),
			Header:     make(http.Header),
			Request:    r,
		}, nil
	}
}

func tagMiddleware(tag string, seen *[]string) Middleware {
	return func(next Responder) Responder {
		return func(r *http.Request) (*http.Response, error) {
			*seen = append(*seen, tag)
			return next(r)
		}
	}
}

func TestTransport_MiddlewareOrder(t *testing.T) {
	var seen []string
	tr := NewTransport(okResponse(http.StatusOK), tagMiddleware("first", &seen))
	tr.Use(tagMiddleware("second", &seen))

	resp, err := (&http.Client{Transport: tr}).Get(testURL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"first", "second"}, seen)
}

func TestUserAgent(t *testing.T) {
	var got string
	base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r.Header.Get("User-Agent")
		return okResponse(http.StatusOK)(r)
	})

	tr := NewTransport(base, UserAgent("userform", "1.2.3"))
	resp, err := (&http.Client{Transport: tr}).Get(testURL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "userform/1.2.3", got)
}

func TestRequestLog(t *testing.T) {
	tests := []struct {
		name      string
		base      roundTripFunc
		wantLevel string
		wantMsg   string
	}{
		{
			name:      "success is debug",
			base:      okResponse(http.StatusOK),
			wantLevel: "debug",
			wantMsg:   "userapi request",
		},
		{
			name:      "rejected is error",
			base:      okResponse(http.StatusBadGateway),
			wantLevel: "error",
			wantMsg:   "userapi request rejected",
		},
		{
			name: "transport failure is error",
			base: func(r *http.Request) (*http.Response, error) {
				return nil, errors.New("dial tcp: refused")
			},
			wantLevel: "error",
			wantMsg:   "userapi request failed",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			tr := NewTransport(tt.base, RequestLog(zap.New(core)))

			req, err := http.NewRequest(http.MethodGet, testURL, nil)
			require.NoError(t, err)
			resp, _ := tr.RoundTrip(req)
			if resp != nil {
				resp.Body.Close()
			}

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level.String())
			assert.Equal(t, tt.wantMsg, entries[0].Message)
			assert.Equal(t, http.MethodGet, entries[0].ContextMap()["method"])
		})
	}
}
