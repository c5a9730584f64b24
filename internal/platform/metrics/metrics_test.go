package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrument_CountsByStatus(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("test", "404"))

	h := Instrument("test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("test", "404")))
}

func TestInstrument_DefaultsToOK(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("test-ok", "200"))

	h := Instrument("test-ok")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hi"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("test-ok", "200")))
}

func TestRecordJobRun(t *testing.T) {
	before := testutil.ToFloat64(jobRuns.WithLabelValues("job-x", ResultSuccess))

	RecordJobRun("job-x", ResultSuccess, 0)
	RecordJobRun("job-x", ResultFailure, time.Second)

	require.Equal(t, before+1, testutil.ToFloat64(jobRuns.WithLabelValues("job-x", ResultSuccess)))
	require.Equal(t, float64(1), testutil.ToFloat64(jobRuns.WithLabelValues("job-x", ResultFailure)))
	require.Greater(t, testutil.ToFloat64(lastSuccess.WithLabelValues("job-x")), float64(0))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	RecordJobRun("job-y", ResultSkipped, time.Millisecond)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `pricesplash_jobs_runs_total{job="job-y",result="skipped"} 1`)
}
