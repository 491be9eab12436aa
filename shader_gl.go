package lumen

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GLShader is a linked GL program implementing ShaderBinder with a
// uniform-location cache. Requires a current GL context.
type GLShader struct {
	program   uint32
	locations map[string]int32
}

func NewGLShader(vertexSource, fragmentSource string) (*GLShader, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("link program: %s", infoLog)
	}

	return &GLShader{
		program:   program,
		locations: make(map[string]int32),
	}, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", infoLog)
	}
	return shader, nil
}

// Use activates the program for subsequent uniform writes and draws.
func (s *GLShader) Use() {
	gl.UseProgram(s.program)
}

// Release deletes the program.
func (s *GLShader) Release() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

func (s *GLShader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

func (s *GLShader) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &value[0])
}

func (s *GLShader) SetVec2(name string, value mgl32.Vec2) {
	gl.Uniform2fv(s.location(name), 1, &value[0])
}

func (s *GLShader) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3fv(s.location(name), 1, &value[0])
}

func (s *GLShader) SetVec4(name string, value mgl32.Vec4) {
	gl.Uniform4fv(s.location(name), 1, &value[0])
}

func (s *GLShader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

func (s *GLShader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

func (s *GLShader) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(s.location(name), v)
}

func (s *GLShader) SetSampler(name string, slot int32) {
	gl.Uniform1i(s.location(name), slot)
}

// DefaultVertexShader and DefaultFragmentShader implement the uniform
// contract above: textured or flat-colored primitives with an optional
// directional light plus up to four point lights.
const DefaultVertexShader = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

out vec3 fragPosition;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
    vec4 worldPos = model * vec4(aPosition, 1.0);
    fragPosition = worldPos.xyz;
    fragNormal = mat3(transpose(inverse(model))) * aNormal;
    fragUV = aUV * UVscale;
    gl_Position = projection * view * worldPos;
}
`

const DefaultFragmentShader = `#version 410 core
in vec3 fragPosition;
in vec3 fragNormal;
in vec2 fragUV;

out vec4 outColor;

struct DirectionalLight {
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct PointLight {
    vec3 position;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct Material {
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};

#define MAX_POINT_LIGHTS 4

uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec3 viewPosition;
uniform DirectionalLight directionalLight;
uniform PointLight pointLights[MAX_POINT_LIGHTS];
uniform Material material;

vec3 shade(vec3 lightDir, vec3 ambient, vec3 diffuse, vec3 specular, vec3 normal, vec3 viewDir, vec3 base) {
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), max(material.shininess, 1.0));
    return ambient * base
        + diffuse * diff * material.diffuseColor * base
        + specular * spec * material.specularColor;
}

void main() {
    vec4 base = bUseTexture ? texture(objectTexture, fragUV) : objectColor;

    if (!bUseLighting) {
        outColor = base;
        return;
    }

    vec3 normal = normalize(fragNormal);
    vec3 viewDir = normalize(viewPosition - fragPosition);
    vec3 lit = vec3(0.0);

    if (directionalLight.bActive) {
        lit += shade(normalize(-directionalLight.direction),
            directionalLight.ambient, directionalLight.diffuse, directionalLight.specular,
            normal, viewDir, base.rgb);
    }
    for (int i = 0; i < MAX_POINT_LIGHTS; i++) {
        if (!pointLights[i].bActive) {
            continue;
        }
        lit += shade(normalize(pointLights[i].position - fragPosition),
            pointLights[i].ambient, pointLights[i].diffuse, pointLights[i].specular,
            normal, viewDir, base.rgb);
    }

    outColor = vec4(lit, base.a);
}
`
