// Package metrics defines and registers the custom Prometheus metrics of the
// user API. All metrics are registered with the default registry at package
// init via promauto and exposed on /metrics.
package metrics

import (
	"mime"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "user_api"

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts served requests.
// Labels:
//   - method: HTTP method
//   - route: the registered route pattern (e.g. "/user/detail/:user_id")
//   - code: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served.",
	},
	[]string{"method", "route", "code"},
)

// HTTPRequestDuration measures request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests from routing to response write.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── Validation metrics ────────────────────────────────────────────────────────

// ValidationFailuresTotal counts rejected fields.
// Labels:
//   - route: route pattern the request hit
//   - field: offending field name (e.g. "password")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of field constraint violations, by route and field.",
	},
	[]string{"route", "field"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// UsersCreatedTotal counts successful create-user calls by role.
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users echoed by the create endpoint, by role.",
	},
	[]string{"role"},
)

// UserLookupsTotal counts id lookups.
// Label:
//   - result: "exists" or "not_found"
var UserLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_lookups_total",
		Help:      "Total number of user id lookups against the known-users directory.",
	},
	[]string{"result"},
)

// ContactSubmissionsTotal counts accepted contact forms.
var ContactSubmissionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of accepted contact form submissions.",
	},
)

// UploadSizeBytes observes accepted upload sizes.
// Label:
//   - content_type: UploadContentType of the client-declared type, so one of
//     image/png, image/jpeg, image/gif, image/webp or other
var UploadSizeBytes = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_size_bytes",
		Help:      "Size of uploaded files in bytes.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 8), // 1KiB … 16MiB
	},
	[]string{"content_type"},
)

// uploadContentTypes bounds the content_type label of UploadSizeBytes.
var uploadContentTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
	"image/webp": {},
}

// UploadContentType maps a client-declared content type onto the fixed label
// set of UploadSizeBytes. Parameters are dropped and case is ignored.
func UploadContentType(declared string) string {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return "other"
	}
	mediaType = strings.ToLower(mediaType)
	if _, ok := uploadContentTypes[mediaType]; ok {
		return mediaType
	}
	return "other"
}
