package promsink

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xgxresult "github.com/xgx-io/xgx-result"
	"github.com/xgx-io/xgx-result/resulttest"
)

func TestSink_Log(t *testing.T) {
	t.Run("will count each record once and forward it", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		rec := resulttest.NewRecorder()
		s, err := New(rec, Registerer(reg))
		require.NoError(t, err)

		inner := xgxresult.New(nil).
			AppendError("a", xgxresult.WithLevel(xgxresult.LevelWarn)).
			AppendError("b")
		xgxresult.New(s).AppendErrors(inner)
		xgxresult.New(s).AppendErrors(inner)

		assert.Equal(t, float64(1), testutil.ToFloat64(s.logged.WithLabelValues("warn")))
		assert.Equal(t, float64(1), testutil.ToFloat64(s.logged.WithLabelValues("error")))
		assert.Equal(t, []string{"a", "b"}, rec.Messages())
	})

	t.Run("will expose the counter under the configured name", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		s, err := New(nil, Registerer(reg), Namespace("billing"), Subsystem("invoices"))
		require.NoError(t, err)

		s.Log(xgxresult.LevelCritical, "ledger mismatch")

		expected := `
# HELP billing_invoices_logged_errors_total Number of operation result errors written to a log sink, by level.
# TYPE billing_invoices_logged_errors_total counter
billing_invoices_logged_errors_total{level="critical"} 1
`
		err = testutil.GatherAndCompare(reg, strings.NewReader(expected), "billing_invoices_logged_errors_total")
		assert.NoError(t, err)
	})

	t.Run("will reuse an already registered counter", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		first, err := New(nil, Registerer(reg))
		require.NoError(t, err)
		second, err := New(nil, Registerer(reg))
		require.NoError(t, err)

		first.Log(xgxresult.LevelError, "x")
		second.Log(xgxresult.LevelError, "y")

		assert.Equal(t, float64(2), testutil.ToFloat64(first.logged.WithLabelValues("error")))
	})
}
