package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSceneName(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
		found  bool
	}{
		{
			name:   "single scene",
			script: "class AndroidDemo(Scene):\n    def construct(self):\n        pass\n",
			want:   "AndroidDemo",
			found:  true,
		},
		{
			name:   "loose spacing",
			script: "class   Spaced ( Scene ) :\n    pass\n",
			want:   "Spaced",
			found:  true,
		},
		{
			name:   "first of several",
			script: "class First(Scene):\n    pass\n\nclass Second(Scene):\n    pass\n",
			want:   "First",
			found:  true,
		},
		{
			name:   "helper class before scene",
			script: "class Helper(object):\n    pass\n\nclass Main(Scene):\n    pass\n",
			want:   "Main",
			found:  true,
		},
		{
			name:   "indirect base is not recognised",
			script: "class Orbit(ThreeDScene):\n    pass\n",
			found:  false,
		},
		{
			name:   "no class",
			script: "circle = Circle()\n",
			found:  false,
		},
		{
			name:   "empty",
			script: "",
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractSceneName(tt.script)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrepareScript(t *testing.T) {
	bare := "class A(Scene):\n    pass\n"
	assert.Equal(t, "from manim import *\n\n"+bare, PrepareScript(bare))

	withImport := "from manim import Circle, Scene\n\nclass A(Scene):\n    pass\n"
	assert.Equal(t, withImport, PrepareScript(withImport))
}

func TestWriteScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scene.py")
	require.NoError(t, WriteScript(path, "class A(Scene):\n    pass\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "from manim import *\n\nclass A(Scene):\n    pass\n", string(data))
}
