package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDir(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	dir := filepath.Join(t.TempDir(), "runs", "sasrec")
	file := filepath.Join(dir, "model.pt")

	require.NoError(t, CheckDir(file))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "make dirs: "+dir, hook.LastEntry().Message)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)

	// Second call finds the directory and logs nothing.
	require.NoError(t, CheckDir(file))
	assert.Len(t, hook.AllEntries(), 1)
}

func TestCheckDirBareName(t *testing.T) {
	assert.NoError(t, CheckDir("model.pt"))
}

func TestCheckDirBlockedByFile(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := CheckDir(filepath.Join(blocker, "sub", "file.txt"))
	assert.Error(t, err)
}
