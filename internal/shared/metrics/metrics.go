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
	contactAcceptedTotal    atomic.Uint64
	chatAcceptedTotal       atomic.Uint64
	newsletterAcceptedTotal atomic.Uint64
	captchaRejectedTotal    atomic.Uint64
	honeypotRejectedTotal   atomic.Uint64
	quizCompletedTotal      atomic.Uint64
	emailFailedTotal        atomic.Uint64

	emailSendDuration = newHistogram([]float64{50, 100, 250, 500, 1000, 2000, 5000, 10000})
)

// IncContactAccepted increments the accepted contact-submission counter.
func IncContactAccepted() {
	contactAcceptedTotal.Add(1)
}

// IncChatAccepted increments the accepted chat-message counter.
func IncChatAccepted() {
	chatAcceptedTotal.Add(1)
}

// IncNewsletterAccepted increments the accepted newsletter-signup counter.
func IncNewsletterAccepted() {
	newsletterAcceptedTotal.Add(1)
}

// IncCaptchaRejected increments the CAPTCHA rejection counter.
func IncCaptchaRejected() {
	captchaRejectedTotal.Add(1)
}

// IncHoneypotRejected increments the honeypot rejection counter.
func IncHoneypotRejected() {
	honeypotRejectedTotal.Add(1)
}

// IncQuizCompleted increments the completed-quiz counter.
func IncQuizCompleted() {
	quizCompletedTotal.Add(1)
}

// IncEmailFailed increments the failed email dispatch counter.
func IncEmailFailed() {
	emailFailedTotal.Add(1)
}

// ObserveEmailSendDurationMs records an email dispatch duration in milliseconds.
func ObserveEmailSendDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	emailSendDuration.Observe(value)
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
	writeCounter(&buf, "contact_accepted_total", "Total contact submissions accepted", contactAcceptedTotal.Load())
	writeCounter(&buf, "chat_accepted_total", "Total chat messages accepted", chatAcceptedTotal.Load())
	writeCounter(&buf, "newsletter_accepted_total", "Total newsletter signups accepted", newsletterAcceptedTotal.Load())
	writeCounter(&buf, "captcha_rejected_total", "Total requests rejected by CAPTCHA", captchaRejectedTotal.Load())
	writeCounter(&buf, "honeypot_rejected_total", "Total requests rejected by honeypot", honeypotRejectedTotal.Load())
	writeCounter(&buf, "quiz_completed_total", "Total quizzes completed", quizCompletedTotal.Load())
	writeCounter(&buf, "email_failed_total", "Total failed email dispatches", emailFailedTotal.Load())
	writeHistogram(&buf, "email_send_duration_ms", "Email dispatch duration in milliseconds", emailSendDuration.Snapshot())
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
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
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
