package engine

import "fmt"

// MaxLights is the number of light source slots in the scene shader.
const MaxLights = 4

const sceneVertexShader = `
#version 410 core

layout (location = 0) in vec3 vertexPosition;
layout (location = 1) in vec3 vertexNormal;
layout (location = 2) in vec2 vertexUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

out vec3 fragmentPosition;
out vec3 fragmentNormal;
out vec2 fragmentUV;

void main()
{
	vec4 worldPosition = model * vec4(vertexPosition, 1.0);

	fragmentPosition = worldPosition.xyz;
	fragmentNormal = mat3(transpose(inverse(model))) * vertexNormal;
	fragmentUV = vertexUV * UVscale;

	gl_Position = projection * view * worldPosition;
}`

const sceneFragmentShader = `
#version 410 core

#define TOTAL_LIGHTS 4

struct LightSource {
	vec3 position;
	vec3 direction;
	vec3 spotDirection;
	vec3 ambientColor;
	vec3 diffuseColor;
	vec3 specularColor;
	float focalStrength;
	float specularIntensity;
};

struct Material {
	vec3 ambientColor;
	float ambientStrength;
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};

in vec3 fragmentPosition;
in vec3 fragmentNormal;
in vec2 fragmentUV;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec3 viewPosition;
uniform LightSource lightSources[TOTAL_LIGHTS];
uniform Material material;

out vec4 outFragmentColor;

vec3 shade(LightSource light, vec3 baseColor, vec3 normal, vec3 viewDirection)
{
	// a zeroed direction marks a positional (spot) light
	bool directional = dot(light.direction, light.direction) > 0.0;

	vec3 lightDirection;
	float focus = 1.0;
	if (directional) {
		lightDirection = normalize(-light.direction);
	} else {
		lightDirection = normalize(light.position - fragmentPosition);
		float theta = max(dot(-lightDirection, normalize(light.spotDirection)), 0.0);
		focus = pow(theta, light.focalStrength);
	}

	vec3 ambient = light.ambientColor * material.ambientStrength * material.ambientColor * baseColor;

	float diffuseFactor = max(dot(normal, lightDirection), 0.0);
	vec3 diffuse = light.diffuseColor * diffuseFactor * material.diffuseColor * baseColor;

	vec3 reflectDirection = reflect(-lightDirection, normal);
	float specularFactor = pow(max(dot(viewDirection, reflectDirection), 0.0), max(material.shininess, 1.0));
	vec3 specular = light.specularIntensity * specularFactor * light.specularColor * material.specularColor;

	return ambient + focus * (diffuse + specular);
}

void main()
{
	vec4 baseColor = bUseTexture ? texture(objectTexture, fragmentUV) : objectColor;

	if (!bUseLighting) {
		outFragmentColor = baseColor;
		return;
	}

	vec3 normal = normalize(fragmentNormal);
	vec3 viewDirection = normalize(viewPosition - fragmentPosition);

	vec3 shaded = vec3(0.0);
	for (int i = 0; i < TOTAL_LIGHTS; i++) {
		shaded += shade(lightSources[i], baseColor.rgb, normal, viewDirection);
	}

	outFragmentColor = vec4(shaded, baseColor.a);
}`

// sceneUniforms lists every uniform name the scene writes, including the
// per-light struct members.
func sceneUniforms() []string {
	names := []string{
		"model",
		"view",
		"projection",
		"UVscale",

		"bUseTexture",
		"bUseLighting",
		"objectColor",
		"objectTexture",
		"viewPosition",

		"material.ambientColor",
		"material.ambientStrength",
		"material.diffuseColor",
		"material.specularColor",
		"material.shininess",
	}

	fields := []string{
		"position", "direction", "spotDirection",
		"ambientColor", "diffuseColor", "specularColor",
		"focalStrength", "specularIntensity",
	}
	for i := 0; i < MaxLights; i++ {
		for _, f := range fields {
			names = append(names, fmt.Sprintf("lightSources[%d].%s", i, f))
		}
	}

	return names
}

// NewSceneProgram compiles the scene shader and registers its uniform
// contract.
func NewSceneProgram() (*Program, error) {
	return NewProgram(sceneVertexShader, sceneFragmentShader, sceneUniforms())
}
