// Package metrics collects and exposes Prometheus metrics for the
// authentication flow.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AuthRecorder is the interface the use case layer records against.
type AuthRecorder interface {
	RecordSignUp(role string)
	RecordSignUpFailure(reason string)
	RecordSignIn()
	RecordSignInFailure(reason string)
	RecordSignOut()
	// RecordPartialProvisioning counts the loud operator-remediation case:
	// the identity provider holds an account the credential store does not.
	RecordPartialProvisioning(compensated bool)
	RecordProviderLatency(operation string, duration time.Duration)
}

// Collector implements AuthRecorder backed by Prometheus metrics.
type Collector struct {
	signUps              *prometheus.CounterVec
	signUpFailures       *prometheus.CounterVec
	signIns              prometheus.Counter
	signInFailures       *prometheus.CounterVec
	signOuts             prometheus.Counter
	partialProvisioning  *prometheus.CounterVec
	providerCallDuration *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		signUps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eventsathi_signups_total",
			Help: "Completed sign-ups by role.",
		}, []string{"role"}),
		signUpFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eventsathi_signup_failures_total",
			Help: "Failed sign-ups by reason.",
		}, []string{"reason"}),
		signIns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eventsathi_signins_total",
			Help: "Completed sign-ins.",
		}),
		signInFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eventsathi_signin_failures_total",
			Help: "Failed sign-ins by reason.",
		}, []string{"reason"}),
		signOuts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eventsathi_signouts_total",
			Help: "Completed sign-outs.",
		}),
		partialProvisioning: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eventsathi_partial_provisioning_total",
			Help: "Sign-ups that left the identity provider and credential store diverged.",
		}, []string{"compensated"}),
		providerCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eventsathi_identity_provider_call_seconds",
			Help:    "Latency of identity provider calls.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	reg.MustRegister(
		c.signUps,
		c.signUpFailures,
		c.signIns,
		c.signInFailures,
		c.signOuts,
		c.partialProvisioning,
		c.providerCallDuration,
	)

	return c
}

// RecordSignUp counts a completed sign-up.
func (c *Collector) RecordSignUp(role string) {
	c.signUps.WithLabelValues(role).Inc()
}

// RecordSignUpFailure counts a failed sign-up.
func (c *Collector) RecordSignUpFailure(reason string) {
	c.signUpFailures.WithLabelValues(reason).Inc()
}

// RecordSignIn counts a completed sign-in.
func (c *Collector) RecordSignIn() {
	c.signIns.Inc()
}

// RecordSignInFailure counts a failed sign-in.
func (c *Collector) RecordSignInFailure(reason string) {
	c.signInFailures.WithLabelValues(reason).Inc()
}

// RecordSignOut counts a completed sign-out.
func (c *Collector) RecordSignOut() {
	c.signOuts.Inc()
}

// RecordPartialProvisioning counts a divergence between the two stores.
func (c *Collector) RecordPartialProvisioning(compensated bool) {
	label := "false"
	if compensated {
		label = "true"
	}
	c.partialProvisioning.WithLabelValues(label).Inc()
}

// RecordProviderLatency observes the duration of one identity provider call.
func (c *Collector) RecordProviderLatency(operation string, duration time.Duration) {
	c.providerCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// nopRecorder discards all observations. Used in tests and when metrics are disabled.
type nopRecorder struct{}

// NewNopRecorder returns an AuthRecorder that records nothing.
func NewNopRecorder() AuthRecorder {
	return nopRecorder{}
}

func (nopRecorder) RecordSignUp(string)                         {}
func (nopRecorder) RecordSignUpFailure(string)                  {}
func (nopRecorder) RecordSignIn()                               {}
func (nopRecorder) RecordSignInFailure(string)                  {}
func (nopRecorder) RecordSignOut()                              {}
func (nopRecorder) RecordPartialProvisioning(bool)              {}
func (nopRecorder) RecordProviderLatency(string, time.Duration) {}
