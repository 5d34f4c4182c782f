package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	recommendationsLLMTotal      atomic.Uint64
	recommendationsRulesTotal    atomic.Uint64
	recommendationsDefaultsTotal atomic.Uint64
	interventionsLLMTotal        atomic.Uint64
	interventionsRulesTotal      atomic.Uint64

	llmDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000})
)

// IncRecommendationTier counts one generation resolved by the given tier.
func IncRecommendationTier(tier string) {
	switch tier {
	case "llm":
		recommendationsLLMTotal.Add(1)
	case "rules":
		recommendationsRulesTotal.Add(1)
	default:
		recommendationsDefaultsTotal.Add(1)
	}
}

// IncInterventionTier counts one intervention generation resolved by the given tier.
func IncInterventionTier(tier string) {
	switch tier {
	case "llm":
		interventionsLLMTotal.Add(1)
	default:
		interventionsRulesTotal.Add(1)
	}
}

// ObserveLLMDurationMs records an upstream LLM call duration in milliseconds.
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
	writeCounter(&buf, "recommendations_llm_total", "Generations served by the LLM tier", recommendationsLLMTotal.Load())
	writeCounter(&buf, "recommendations_rules_total", "Generations served by the rule-engine tier", recommendationsRulesTotal.Load())
	writeCounter(&buf, "recommendations_defaults_total", "Generations served by the static defaults tier", recommendationsDefaultsTotal.Load())
	writeCounter(&buf, "interventions_llm_total", "Intervention generations served by the LLM tier", interventionsLLMTotal.Load())
	writeCounter(&buf, "interventions_rules_total", "Intervention generations served by the rule engine", interventionsRulesTotal.Load())
	writeHistogram(&buf, "llm_call_duration_ms", "Upstream LLM call duration in milliseconds", llmDuration.Snapshot())
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

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
