package refraction_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/goplus/refraction"
)

func TestLogger(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	refraction.SetLogger(logger)
	defer refraction.SetLogger(nil)

	_, err := refraction.NewMethod(newChild(), "basePrivateMethod")
	require.ErrorIs(t, err, refraction.ErrNotVisible)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.DebugLevel, entry.Level)
	require.Equal(t, "basePrivateMethod", entry.Data["member"])
	require.Equal(t, "Child", entry.Data["type"])
	require.Equal(t, "Base", entry.Data["owner"])

	hook.Reset()
	c, err := refraction.NewClass(newChild())
	require.NoError(t, err)
	c.Properties()
	require.NotEmpty(t, hook.AllEntries())
}
