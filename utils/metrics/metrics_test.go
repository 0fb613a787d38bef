package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordVerdict(t *testing.T) {
	before := testutil.ToFloat64(ProbeVerdicts.WithLabelValues("probe", "true"))
	RecordVerdict("probe", true)
	assert.Equal(t, before+1, testutil.ToFloat64(ProbeVerdicts.WithLabelValues("probe", "true")))

	beforeFalse := testutil.ToFloat64(ProbeVerdicts.WithLabelValues("memory", "false"))
	RecordVerdict("memory", false)
	assert.Equal(t, beforeFalse+1, testutil.ToFloat64(ProbeVerdicts.WithLabelValues("memory", "false")))
}

func TestRecordPipeline(t *testing.T) {
	before := testutil.ToFloat64(PipelineRuns.WithLabelValues("success"))
	RecordPipeline("success", 0.25)
	assert.Equal(t, before+1, testutil.ToFloat64(PipelineRuns.WithLabelValues("success")))
}

func TestRecordOriginFetch(t *testing.T) {
	before := testutil.ToFloat64(OriginFetches.WithLabelValues("error"))
	RecordOriginFetch("error", 0)
	RecordOriginFetch("ok", 2048)
	assert.Equal(t, before+1, testutil.ToFloat64(OriginFetches.WithLabelValues("error")))
}
