package opengl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProgramPathChecks(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "basic.vert")
	frag := filepath.Join(dir, "basic.frag")
	glsl := filepath.Join(dir, "basic.glsl")
	for _, p := range []string{vert, frag, glsl} {
		require.NoError(t, os.WriteFile(p, []byte("#version 410 core\nvoid main() {}\n"), 0o644))
	}

	_, err := LoadProgram(glsl, frag)
	assert.ErrorContains(t, err, "expected .vert extension")

	_, err = LoadProgram(vert, glsl)
	assert.ErrorContains(t, err, "expected .frag extension")

	_, err = LoadProgram(filepath.Join(dir, "missing.vert"), frag)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadProgram(vert, filepath.Join(dir, "missing.frag"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
