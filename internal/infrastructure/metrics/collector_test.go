package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Records(t *testing.T) {
	c := NewCollector()

	c.RecordPost("instagram", true)
	c.RecordPost("instagram", false)
	c.RecordPost("linkedin", false)
	c.RecordCaptionFallback("disabled", 3)
	c.RecordCaptionFallback("error", 0)
	c.RecordRejection("quota_exceeded")
	c.RecordReconcile("admin", false, 1, 1, 3)
	c.RecordWebhook("checkout.session.completed")
	c.RecordFlagsReload()
	c.RecordHTTPRequest(http.MethodPost, "/api/generate", http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.postsGenerated.WithLabelValues("instagram")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.reelsPlanned))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.captionFallbacks.WithLabelValues("disabled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.gateRejections.WithLabelValues("quota_exceeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.reconcileRuns.WithLabelValues("admin", "partial")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.reconcileRows.WithLabelValues("unchanged")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.webhookEvents.WithLabelValues("checkout.session.completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.flagReloads))
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.RecordPost("instagram", true)
		c.RecordRejection("upgrade_required")
		c.RecordReconcile("scheduler", true, 0, 0, 0)
		c.RecordFlagsReload()
		c.RecordHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.RecordPost("tiktok", true)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `togetherly_posts_generated_total{platform="tiktok"} 1`)
}
