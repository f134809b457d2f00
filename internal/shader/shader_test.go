package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNames(t *testing.T) {
	n := DefaultNames()
	assert.Equal(t, "model", n.Model)
	assert.Equal(t, "objectColor", n.Color)
	assert.Equal(t, "objectTexture", n.Texture)
	assert.Equal(t, "bUseTexture", n.UseTexture)
	assert.Equal(t, "bUseLighting", n.UseLighting)
	assert.Equal(t, "UVscale", n.UVScale)
	assert.Equal(t, "material.shininess", n.MaterialShininess)
}

func TestLightFieldNames(t *testing.T) {
	n := DefaultNames()
	assert.Equal(t, "directionalLight.direction", n.DirectionalField(FieldDirection))
	assert.Equal(t, "directionalLight.bActive", n.DirectionalField(FieldActive))
	assert.Equal(t, "pointLights[0].position", n.PointLightField(0, FieldPosition))
	assert.Equal(t, "pointLights[3].quadratic", n.PointLightField(3, FieldQuadratic))

	n.PointLights = "lamps"
	assert.Equal(t, "lamps[1].linear", n.PointLightField(1, FieldLinear))
}
