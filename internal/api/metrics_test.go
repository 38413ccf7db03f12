package api

import (
	"testing"

	"nexmart-chat-backend/internal/queue"
)

// Test suites build a fresh server per test against the default registry, so
// constructing a second server must reuse collectors instead of panicking on
// duplicate registration.
func TestNewAPIServerReusesCollectors(t *testing.T) {
	qm := queue.NewRequestQueueManager(4, 1)
	t.Cleanup(qm.Shutdown)

	first := NewAPIServer(":0", qm, nil, nil)
	second := NewAPIServer(":0", qm, nil, nil)

	if first.metrics.requests != second.metrics.requests {
		t.Fatal("request counter was not reused by the second server")
	}
	if first.metrics.duration != second.metrics.duration {
		t.Fatal("duration histogram was not reused by the second server")
	}
	if first.metrics.inFlight != second.metrics.inFlight {
		t.Fatal("inflight gauge was not reused by the second server")
	}
}

func TestNewAPIServerDistinctAddrsRegisterSeparately(t *testing.T) {
	qm := queue.NewRequestQueueManager(4, 1)
	t.Cleanup(qm.Shutdown)

	first := NewAPIServer(":18080", qm, nil, nil)
	second := NewAPIServer(":18081", qm, nil, nil)

	if first.metrics.requests == second.metrics.requests {
		t.Fatal("servers on different addresses share a request counter")
	}
}

func TestSanitizePathCapsSegments(t *testing.T) {
	cases := map[string]string{
		"":                                   "/",
		"/":                                  "/",
		"/api/public/v1/products":            "/api/public/v1/...",
		"/api/public/v1/chat/sessions/s1/ws": "/api/public/v1/...",
		"/health":                            "/health",
	}
	for in, want := range cases {
		if got := sanitizePath(in); got != want {
			t.Errorf("sanitizePath(%q) = %q, want %q", in, got, want)
		}
	}
}
