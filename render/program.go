package render

import "errors"

// DefaultVertexShader passes the vertex position through as clip space
// coordinates, so vertices are expected in normalized device coordinates.
const DefaultVertexShader = `
#version 140

in vec2 position;

void main()
{
    gl_Position = vec4(position, 0.0, 1.0);
}
`

// DefaultFragmentShader paints everything opaque black.
const DefaultFragmentShader = `
#version 140

out vec4 color;

void main()
{
    color = vec4(0.0, 0.0, 0.0, 1.0);
}
`

// DrawParameters are the fixed function settings of a draw call.
type DrawParameters struct {
	LineWidth float32
	Smooth    bool
}

// Program is the drawing configuration shared by every object of a
// scene.
type Program struct {
	VertexShader   string
	FragmentShader string
	Uniforms       map[string]any
	Parameters     DrawParameters
}

// DefaultProgram returns the pass-through shaders with 1px lines.
func DefaultProgram() *Program {
	return &Program{
		VertexShader:   DefaultVertexShader,
		FragmentShader: DefaultFragmentShader,
		Uniforms:       map[string]any{},
		Parameters:     DrawParameters{LineWidth: 1},
	}
}

func (p *Program) validate() error {
	if p == nil {
		return errors.New("render: nil program")
	}
	if p.VertexShader == "" || p.FragmentShader == "" {
		return errors.New("render: program needs a vertex and a fragment shader")
	}
	return nil
}
