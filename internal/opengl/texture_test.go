package opengl

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphics-demos/scene"
)

func TestUploadTexture(t *testing.T) {
	api := newRecorder()
	src := scene.NewCheckerTexture("checker", 4, 2, color.RGBA{255, 0, 0, 255}, color.RGBA{0, 0, 255, 255})

	tex, err := UploadTexture(api, src)
	require.NoError(t, err)
	assert.NotZero(t, tex.ID)
	assert.Equal(t, 4, tex.Width)

	img, ok := api.textures[tex.ID]
	require.True(t, ok, "pixels stored in the new texture")
	assert.Equal(t, int32(4), img.width)
	assert.Equal(t, int32(4), img.height)
	assert.Equal(t, src.Pixels, img.pixels)
	assert.Zero(t, api.units[0], "unit 0 unbound after upload")

	require.NoError(t, tex.Bind(1))
	assert.Equal(t, tex.ID, api.units[1])
}

func TestUploadTextureRejectsBadPixels(t *testing.T) {
	api := newRecorder()
	_, err := UploadTexture(api, &scene.Texture{Name: "short", Width: 2, Height: 2, Pixels: make([]byte, 4)})
	assert.ErrorIs(t, err, scene.ErrMalformedAsset)

	_, err = UploadTexture(api, nil)
	assert.Error(t, err)
	assert.Empty(t, api.calls, "nothing allocated for rejected textures")
}

func TestTextureDelete(t *testing.T) {
	api := newRecorder()
	tex, err := UploadTexture(api, scene.NewSolidTexture("white", color.RGBA{255, 255, 255, 255}))
	require.NoError(t, err)

	tex.Delete()
	tex.Delete()
	assert.Zero(t, api.liveCount())
	assert.Equal(t, 1, countCalls(api, "DeleteTexture"))
	assert.ErrorIs(t, tex.Bind(0), ErrInvalidHandle)
}
