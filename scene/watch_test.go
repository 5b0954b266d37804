package scene

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "quad.obj")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(watched, []byte(quadOBJ), 0o644))

	w, err := NewWatcher([]string{watched})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(watched, []byte(quadOBJ+"\n"), 0o644))

	select {
	case path := <-w.Changed():
		assert.Equal(t, watched, path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	time.Sleep(50 * time.Millisecond)
	for _, path := range w.Pending() {
		assert.Equal(t, watched, path)
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher([]string{filepath.Join(t.TempDir(), "gone", "mesh.obj")})
	assert.Error(t, err)
}
