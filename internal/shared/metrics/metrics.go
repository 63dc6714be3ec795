package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	matchRequestsTotal       atomic.Uint64
	llmCallsTotal            atomic.Uint64
	llmFallbacksTotal        atomic.Uint64
	jobProviderFailuresTotal atomic.Uint64
	jobCacheHitsTotal        atomic.Uint64
	vaultSweptFilesTotal     atomic.Uint64

	llmDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000})
)

// IncMatchRequests increments the match computation counter.
func IncMatchRequests() {
	matchRequestsTotal.Add(1)
}

// IncLLMCalls increments the outbound LLM call counter.
func IncLLMCalls() {
	llmCallsTotal.Add(1)
}

// IncLLMFallbacks increments the semantic-to-keyword fallback counter.
func IncLLMFallbacks() {
	llmFallbacksTotal.Add(1)
}

// IncJobProviderFailures increments the per-provider failure counter.
func IncJobProviderFailures() {
	jobProviderFailuresTotal.Add(1)
}

// IncJobCacheHits increments the job cache hit counter.
func IncJobCacheHits() {
	jobCacheHitsTotal.Add(1)
}

// AddVaultSweptFiles records files removed by a vault sweep.
func AddVaultSweptFiles(n int) {
	if n > 0 {
		vaultSweptFilesTotal.Add(uint64(n))
	}
}

// ObserveLLMDurationMs records an LLM call duration in milliseconds.
func ObserveLLMDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	llmDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "match_requests_total", "Total match computations", matchRequestsTotal.Load())
	writeCounter(&buf, "llm_calls_total", "Total outbound LLM calls", llmCallsTotal.Load())
	writeCounter(&buf, "llm_fallbacks_total", "Total semantic score fallbacks to keyword scoring", llmFallbacksTotal.Load())
	writeCounter(&buf, "job_provider_failures_total", "Total job provider failures", jobProviderFailuresTotal.Load())
	writeCounter(&buf, "job_cache_hits_total", "Total job cache hits", jobCacheHitsTotal.Load())
	writeCounter(&buf, "vault_swept_files_total", "Total files removed by vault sweeps", vaultSweptFilesTotal.Load())
	writeHistogram(&buf, "llm_duration_ms", "LLM call duration in milliseconds", llmDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
