// Package codes renders QR and Code128 barcode PNGs for asset ids. Images
// are generated once and cached on disk, then served as static files.
package codes

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	qrcode "github.com/skip2/go-qrcode"
)

type Generator struct {
	dir string
}

func NewGenerator(dir string) *Generator { return &Generator{dir: dir} }

// QRCodePNG returns the path of the cached QR image for code, generating it
// on first use.
func (g *Generator) QRCodePNG(code string) (string, error) {
	path := filepath.Join(g.dir, "qrcodes", sanitize(code)+".png")
	if fileExists(path) {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := qrcode.WriteFile(code, qrcode.Medium, 256, path); err != nil {
		return "", err
	}
	return path, nil
}

// BarcodePNG returns the path of the cached Code128 image for code,
// generating it on first use.
func (g *Generator) BarcodePNG(code string) (string, error) {
	path := filepath.Join(g.dir, "barcodes", sanitize(code)+".png")
	if fileExists(path) {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	bc, err := code128.Encode(code)
	if err != nil {
		return "", err
	}
	scaled, err := barcode.Scale(bc, 400, 120)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, scaled); err != nil {
		return "", err
	}
	return path, nil
}

// Codes are uuids in practice, but the value comes from a URL parameter.
func sanitize(code string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, code)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
