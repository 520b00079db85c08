package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordQueryCountsErrors(t *testing.T) {
	before := testutil.ToFloat64(QueryErrors.WithLabelValues("metrics_test"))

	RecordQuery("metrics_test", time.Now(), nil)
	RecordQuery("metrics_test", time.Now(), errors.New("boom"))

	after := testutil.ToFloat64(QueryErrors.WithLabelValues("metrics_test"))
	assert.Equal(t, before+1, after)
}

func TestRecordETLRun(t *testing.T) {
	before := testutil.ToFloat64(ETLRows.WithLabelValues("dropped"))
	runs := testutil.ToFloat64(ETLRuns.WithLabelValues("success"))

	RecordETLRun(10, 7, nil)

	assert.Equal(t, before+3, testutil.ToFloat64(ETLRows.WithLabelValues("dropped")))
	assert.Equal(t, runs+1, testutil.ToFloat64(ETLRuns.WithLabelValues("success")))
}
