package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	err := Initialize("loud", filepath.Join(t.TempDir(), "x.log"))
	require.Error(t, err)
}

func TestInitializeWritesToFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "logs", "signup.log")
	require.NoError(t, Initialize("debug", path))

	Log.Infow("submission finished", "attempt", "abc")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "submission finished")
	require.Contains(t, string(data), `"attempt":"abc"`)
}

func TestInitializeWithoutPathKeepsNop(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	Log = zap.NewNop().Sugar()
	require.NoError(t, Initialize("info", ""))
	require.NotNil(t, Log)
}
