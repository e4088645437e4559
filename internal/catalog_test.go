package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogBuildsBothAppearances(t *testing.T) {
	light := Catalog(AppearanceLight)
	dark := Catalog(AppearanceDark)

	require.NotEmpty(t, light)
	require.NotEmpty(t, dark)
	assert.Len(t, light, len(lightScaleTokens))
	assert.Len(t, dark, len(darkScaleTokens))

	for name, scale := range light {
		assert.Equal(t, name, scale.Name)
		assert.Equal(t, grayLikeNames[name], scale.GrayLike)
	}
}

func TestCatalogIsMemoizedSingleton(t *testing.T) {
	first := Catalog(AppearanceLight)
	second := Catalog(AppearanceLight)
	assert.Equal(t, first, second)
}
