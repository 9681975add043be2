package codes

import (
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQRCodePNGCaches(t *testing.T) {
	gen := NewGenerator(t.TempDir())

	path, err := gen.QRCodePNG("asset-123")
	require.NoError(t, err)
	require.FileExists(t, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 256, cfg.Width)

	again, err := gen.QRCodePNG("asset-123")
	require.NoError(t, err)
	require.Equal(t, path, again)
}

func TestBarcodePNG(t *testing.T) {
	gen := NewGenerator(t.TempDir())

	path, err := gen.BarcodePNG("asset-123")
	require.NoError(t, err)
	require.FileExists(t, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 400, cfg.Width)
	require.Equal(t, 120, cfg.Height)
}

func TestSanitizeStripsPathCharacters(t *testing.T) {
	gen := NewGenerator(t.TempDir())

	path, err := gen.QRCodePNG("../../etc/passwd")
	require.NoError(t, err)
	require.FileExists(t, path)
	require.NotContains(t, path, "..")
}
