// Package metrics exposes prometheus counters for the DCP engine and
// an optional HTTP endpoint serving them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// FramesSent counts transmitted request frames
	FramesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pndcp_frames_sent_total",
		Help: "Number of DCP request frames transmitted.",
	})

	// FramesReceived counts frames that passed the kernel filter
	FramesReceived = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pndcp_frames_received_total",
		Help: "Number of frames received from the raw socket.",
	})

	// FramesDropped counts received frames discarded as malformed or
	// not matching the current transaction
	FramesDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pndcp_frames_dropped_total",
		Help: "Number of received frames dropped during validation.",
	})

	// RequestTimeouts counts unicast transactions that expired without
	// a matching response
	RequestTimeouts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pndcp_request_timeouts_total",
		Help: "Number of requests that timed out without a response.",
	})

	// DevicesDiscovered counts devices assembled from responses
	DevicesDiscovered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pndcp_devices_discovered_total",
		Help: "Number of devices parsed from DCP responses.",
	})
)

func init() {
	prometheus.MustRegister(FramesSent, FramesReceived, FramesDropped, RequestTimeouts, DevicesDiscovered)
}

// Serve starts the metrics and healthz server on addr in the
// background.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		_ = http.ListenAndServe(addr, mux)
	}()
}
