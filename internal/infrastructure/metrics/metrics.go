package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// counter results
const (
	AppRequests          = "app_requests_total"
	UserSubmitted        = "user_submitted_total"
	UserSubmitFailed     = "user_submit_failed_total"
	UserValidationFailed = "user_validation_failed_total"
	UsersFetched         = "users_fetched_total"
	UsersFetchFailed     = "users_fetch_failed_total"
	UserAPIRequests      = "userapi_requests_total"
)

func counterOpts() prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: "userform",
		Name:      "general_counters",
	}
}

// NewCounter registers the counter vec with the default registry. A second
// call returns the vec registered first.
func NewCounter() *prometheus.CounterVec {
	c := NewUnregisteredCounter()
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}

	return c
}

// NewUnregisteredCounter is NewCounter without registration, for tests and
// short-lived instances.
func NewUnregisteredCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(counterOpts(), []string{"result"})
}

// Inc tolerates a nil counter.
func Inc(c *prometheus.CounterVec, result string) {
	if c == nil {
		return
	}
	c.WithLabelValues(result).Inc()
}
