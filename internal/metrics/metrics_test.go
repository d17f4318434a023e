package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCountersAreExposed(t *testing.T) {
	before := testutil.ToFloat64(IngestOutcomes.WithLabelValues("pokemon", "success"))
	IngestOutcomes.WithLabelValues("pokemon", "success").Inc()
	require.InDelta(t, before+1, testutil.ToFloat64(IngestOutcomes.WithLabelValues("pokemon", "success")), 0.0001)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "localdex_ingest_records_total")
}
