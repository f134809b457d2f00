package rlgpu

// Attribute names match raylib's default shader locations so DrawMesh binds
// positions, texture coordinates and normals without extra setup. matView
// and matProjection are filled in by raylib on every DrawMesh; the model
// matrix comes from the scene through the "model" uniform.
const (
	sceneVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;

uniform mat4 model;
uniform mat4 matView;
uniform mat4 matProjection;

out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;

void main() {
  vec4 world = model * vec4(vertexPosition, 1.0);
  fragPosition = world.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(transpose(inverse(model))) * vertexNormal;
  gl_Position = matProjection * matView * world;
}
`

	sceneFS = `#version 330
#define MAX_POINT_LIGHTS 4

struct Material {
  vec3 diffuseColor;
  vec3 specularColor;
  float shininess;
};

struct DirectionalLight {
  vec3 direction;
  vec3 ambient;
  vec3 diffuse;
  vec3 specular;
  bool bActive;
};

struct PointLight {
  vec3 position;
  float constant;
  float linear;
  float quadratic;
  vec3 ambient;
  vec3 diffuse;
  vec3 specular;
  bool bActive;
};

in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform DirectionalLight directionalLight;
uniform PointLight pointLights[MAX_POINT_LIGHTS];

out vec4 finalColor;

vec3 shade(vec3 lightDir, vec3 ambient, vec3 diffuse, vec3 specular, vec3 n, vec3 v, vec3 base) {
  float diff = max(dot(n, lightDir), 0.0);
  vec3 reflectDir = reflect(-lightDir, n);
  float spec = pow(max(dot(v, reflectDir), 0.0), max(material.shininess, 0.001));
  return ambient * base
       + diffuse * diff * material.diffuseColor * base
       + specular * spec * material.specularColor;
}

void main() {
  vec4 base = bUseTexture ? texture(objectTexture, fragTexCoord * UVscale) : objectColor;
  if (!bUseLighting) {
    finalColor = base;
    return;
  }

  vec3 n = normalize(fragNormal);
  vec3 v = normalize(viewPosition - fragPosition);
  vec3 result = vec3(0.0);

  if (directionalLight.bActive) {
    DirectionalLight d = directionalLight;
    result += shade(normalize(-d.direction), d.ambient, d.diffuse, d.specular, n, v, base.rgb);
  }
  for (int i = 0; i < MAX_POINT_LIGHTS; i++) {
    PointLight p = pointLights[i];
    if (!p.bActive) {
      continue;
    }
    float dist = length(p.position - fragPosition);
    float att = 1.0 / (p.constant + p.linear * dist + p.quadratic * dist * dist);
    vec3 l = normalize(p.position - fragPosition);
    result += att * shade(l, p.ambient, p.diffuse, p.specular, n, v, base.rgb);
  }

  finalColor = vec4(result, base.a);
}
`
)
