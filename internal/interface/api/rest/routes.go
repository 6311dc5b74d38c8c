package rest

const (
	// page
	RouteIndex      = "/"
	RouteUsers      = "/users"
	RouteFetchUsers = RouteUsers + "/fetch"

	// api
	RouteApiV1    = "/api/v1"
	RouteValidate = RouteApiV1 + "/validate"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
