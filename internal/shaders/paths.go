package shaders

import (
	"embed"
	"io/fs"
	"os"
)

const VertexPath = "vertex.glsl"
const FragmentPath = "fragment.glsl"

//go:embed *.glsl
var embedded embed.FS

// Sources returns the directory shader paths are resolved against: dir when
// set, the built-in shaders otherwise.
func Sources(dir string) fs.FS {
	if dir == "" {
		return embedded
	}
	return os.DirFS(dir)
}
