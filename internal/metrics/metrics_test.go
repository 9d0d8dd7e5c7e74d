package metrics

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"swmterm/internal/content"
	"swmterm/internal/terminal"
	"swmterm/pkg/types"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCommandLabelsUnknownNamesAsOther(t *testing.T) {
	known := []string{"ls", "cd"}
	lsBefore := testutil.ToFloat64(commandsTotal.WithLabelValues("ls", "text"))
	otherBefore := testutil.ToFloat64(commandsTotal.WithLabelValues(otherCommand, "text"))

	observe := CommandObserver(known)
	observe("ls", terminal.Result{Kind: types.ResultText})
	observe("rm", terminal.Result{Kind: types.ResultText})
	observe("what", terminal.Result{Kind: types.ResultText})

	assert.Equal(t, lsBefore+1, testutil.ToFloat64(commandsTotal.WithLabelValues("ls", "text")))
	assert.Equal(t, otherBefore+2, testutil.ToFloat64(commandsTotal.WithLabelValues(otherCommand, "text")))
}

func TestRecordCommandCountsRules(t *testing.T) {
	before := testutil.ToFloat64(questionsTotal.WithLabelValues("skill"))
	RecordCommand("ask", []string{"ask"}, terminal.Result{Kind: types.ResultText, Rule: "skill"})
	RecordCommand("ls", []string{"ls"}, terminal.Result{Kind: types.ResultText})
	assert.Equal(t, before+1, testutil.ToFloat64(questionsTotal.WithLabelValues("skill")))
}

func TestRecordIndexLoad(t *testing.T) {
	okBefore := testutil.ToFloat64(indexLoadsTotal.WithLabelValues("success"))
	errBefore := testutil.ToFloat64(indexLoadsTotal.WithLabelValues("error"))

	RecordIndexLoad(content.Stats{Files: 12, Entries: 5}, 20*time.Millisecond, nil)
	assert.Equal(t, okBefore+1, testutil.ToFloat64(indexLoadsTotal.WithLabelValues("success")))
	assert.Equal(t, 12.0, testutil.ToFloat64(indexFiles))
	assert.Equal(t, 5.0, testutil.ToFloat64(indexEntries))

	RecordIndexLoad(content.Stats{}, time.Millisecond, errors.New("boom"))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(indexLoadsTotal.WithLabelValues("error")))
	assert.Equal(t, 12.0, testutil.ToFloat64(indexFiles), "a failed load keeps the last gauges")
}

func TestHandlerExposesMetrics(t *testing.T) {
	SetSessionsActive(3)
	RecordHTTPRequest("GET", "/healthz", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "swmterm_sessions_active 3"))
	assert.Contains(t, body, `swmterm_http_requests_total{method="GET",route="/healthz",status="200"}`)
}
