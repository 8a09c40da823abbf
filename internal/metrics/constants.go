package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameCasesOpened     = "cases_opened_total"
	MetricNameOpeningFailures = "opening_failures_total"
	MetricNameMoneySpentCents = "money_spent_cents_total"
)

// Metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextCasesOpened     = "Total number of successfully opened cases"
	HelpTextOpeningFailures = "Total number of failed case openings by reason"
	HelpTextMoneySpentCents = "Total balance spent opening cases, in cents"
)

// Metric label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelCase   = "case"
	LabelRarity = "rarity"
	LabelReason = "reason"
)

// HTTPLatencyBuckets are the histogram buckets for request latency, in seconds.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
