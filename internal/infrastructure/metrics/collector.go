// Package metrics exposes Prometheus counters for generation, gating, billing
// and HTTP traffic. A nil *Collector records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "togetherly"

// Collector owns a private registry so tests can build as many as they like.
type Collector struct {
	registry *prometheus.Registry

	postsGenerated      *prometheus.CounterVec
	reelsPlanned        prometheus.Counter
	captionFallbacks    *prometheus.CounterVec
	gateRejections      *prometheus.CounterVec
	reconcileRuns       *prometheus.CounterVec
	reconcileRows       *prometheus.CounterVec
	webhookEvents       *prometheus.CounterVec
	flagReloads         prometheus.Counter
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		postsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_generated_total",
			Help:      "Posts generated, by platform",
		}, []string{"platform"}),
		reelsPlanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reels_planned_total",
			Help:      "Reel plans attached to generated posts",
		}),
		captionFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "caption_enhance_fallbacks_total",
			Help:      "Captions that kept the local draft, by reason",
		}, []string{"reason"}),
		gateRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_rejections_total",
			Help:      "Generation requests refused by the usage gate, by reason",
		}, []string{"reason"}),
		reconcileRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_runs_total",
			Help:      "Subscription reconcile passes, by trigger and outcome",
		}, []string{"trigger", "outcome"}),
		reconcileRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_rows_total",
			Help:      "Subscription rows visited by reconcile, by result",
		}, []string{"result"}),
		webhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "billing_webhook_events_total",
			Help:      "Billing webhook events received, by type",
		}, []string{"type"}),
		flagReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feature_flag_reloads_total",
			Help:      "Successful feature flag file reloads",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method, route and status",
		}, []string{"method", "route", "status_code"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.postsGenerated,
		c.reelsPlanned,
		c.captionFallbacks,
		c.gateRejections,
		c.reconcileRuns,
		c.reconcileRows,
		c.webhookEvents,
		c.flagReloads,
		c.httpRequests,
		c.httpRequestDuration,
	)
	return c
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) RecordPost(platform string, hasReel bool) {
	if c == nil {
		return
	}
	c.postsGenerated.WithLabelValues(platform).Inc()
	if hasReel {
		c.reelsPlanned.Inc()
	}
}

func (c *Collector) RecordCaptionFallback(reason string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.captionFallbacks.WithLabelValues(reason).Add(float64(n))
}

func (c *Collector) RecordRejection(reason string) {
	if c == nil {
		return
	}
	c.gateRejections.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordReconcile(trigger string, ok bool, updated, failed, checked int) {
	if c == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "partial"
	}
	c.reconcileRuns.WithLabelValues(trigger, outcome).Inc()
	c.reconcileRows.WithLabelValues("updated").Add(float64(updated))
	c.reconcileRows.WithLabelValues("failed").Add(float64(failed))
	c.reconcileRows.WithLabelValues("unchanged").Add(float64(max(0, checked-updated-failed)))
}

func (c *Collector) RecordWebhook(eventType string) {
	if c == nil {
		return
	}
	c.webhookEvents.WithLabelValues(eventType).Inc()
}

func (c *Collector) RecordFlagsReload() {
	if c == nil {
		return
	}
	c.flagReloads.Inc()
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
