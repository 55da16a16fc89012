package logrsink

import (
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xgxresult "github.com/xgx-io/xgx-result"
)

func capture(verbosity int) (logr.Logger, *[]string) {
	var lines []string
	l := funcr.NewJSON(func(obj string) {
		lines = append(lines, obj)
	}, funcr.Options{Verbosity: verbosity})
	return l, &lines
}

func TestSink_Log(t *testing.T) {
	testCases := []struct {
		name    string
		level   xgxresult.Level
		want    []string
		notWant string
	}{
		{name: "error", level: xgxresult.LevelError, want: []string{`"error":`, `"severity":"error"`}},
		{name: "unset", level: 0, want: []string{`"error":`, `"severity":"error"`}},
		{name: "critical", level: xgxresult.LevelCritical, want: []string{`"error":`, `"severity":"critical"`}},
		{name: "warn", level: xgxresult.LevelWarn, want: []string{`"level":0`, `"severity":"warn"`}, notWant: `"error":`},
		{name: "info", level: xgxresult.LevelInfo, want: []string{`"level":0`, `"severity":"info"`}, notWant: `"error":`},
		{name: "debug", level: xgxresult.LevelDebug, want: []string{`"level":1`, `"severity":"debug"`}},
		{name: "trace", level: xgxresult.LevelTrace, want: []string{`"level":2`, `"severity":"trace"`}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, lines := capture(TraceV)

			New(l).Log(tc.level, "quota exceeded")

			require.Len(t, *lines, 1)
			line := (*lines)[0]
			assert.Contains(t, line, `"msg":"quota exceeded"`)
			for _, w := range tc.want {
				assert.Contains(t, line, w)
			}
			if tc.notWant != "" {
				assert.NotContains(t, line, tc.notWant)
			}
		})
	}
}

func TestSink_VerbosityFilters(t *testing.T) {
	l, lines := capture(0)
	res := xgxresult.New(New(l)).
		AppendError("hidden", xgxresult.WithLevel(xgxresult.LevelDebug)).
		AppendError("shown", xgxresult.WithLevel(xgxresult.LevelInfo))

	require.Len(t, *lines, 1)
	assert.True(t, strings.Contains((*lines)[0], "shown"))

	// the record is marked logged even though logr filtered it
	assert.True(t, res.Errors()[0].Base().Logged())
}
