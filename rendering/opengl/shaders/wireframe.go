package shaders

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const wireframeVertexShader = `
#version 410 core

layout(location = 0) in vec3 position;

uniform mat4 mvp;

void main() {
    gl_Position = mvp * vec4(position, 1.0);
}
`

const wireframeFragmentShader = `
#version 410 core

uniform vec3 lineColor;

out vec4 fragColor;

void main() {
    fragColor = vec4(lineColor, 1.0);
}
`

// CompileWireframeShaders builds the flat-colored line program. Its uniforms
// are "mvp" (mat4) and "lineColor" (vec3).
func CompileWireframeShaders() (uint32, error) {
	vertShader, err := compileShader(wireframeVertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(wireframeFragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragShader)

	return linkProgram(vertShader, fragShader)
}
