package file

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPathSwapsExtension(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(filepath.Join("songs", "tune.ow.txt"), OutputPath(filepath.Join("songs", "tune.mid")))
	assert.Equal("tune.ow.txt", OutputPath("tune.midi"))
}

func TestOutputPathHonorsOutDir(t *testing.T) {
	t.Setenv("OUT_PATH", "out")
	assert.Equal(t, filepath.Join("out", "tune.ow.txt"), OutputPath(filepath.Join("songs", "tune.mid")))
}

func TestCreateFileNumMap(t *testing.T) {
	m := CreateFileNumMap([]string{"a.mid", "b.mid"})

	assert := assert.New(t)
	assert.Equal(2, len(m))
	assert.Equal("a.mid", m[0])
	assert.Equal("b.mid", m[1])
}
