package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/negabinary"
)

func TestLogrusTracer(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	tr := LogrusTracer{E: logrus.NewEntry(logger)}

	out, err := negabinary.NegateReencode(negabinary.Digits{1, 1, 1, 1}, tr)
	require.NoError(t, err)
	require.Equal(t, "101", out.String())

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, "decoded", entries[0].Message)
	require.Equal(t, "-5", entries[0].Data["value"])
	require.Equal(t, "negated", entries[1].Message)
	require.Equal(t, "5", entries[1].Data["value"])
	require.Equal(t, logrus.DebugLevel, entries[1].Level)
}
