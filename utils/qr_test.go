package utils

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"
)

func TestGenerateQRCode(t *testing.T) {
	data, err := GenerateQRCode("https://example.com/menu?table=T1", 256)
	if err != nil {
		t.Fatalf("GenerateQRCode() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 256 {
		t.Errorf("image is %dx%d, want 256x256", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestGenerateTableQR(t *testing.T) {
	qr, err := GenerateTableQR("T7", "http://localhost:5173")
	if err != nil {
		t.Fatalf("GenerateTableQR() error = %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(qr, prefix) {
		t.Fatalf("missing data URL prefix: %.40q", qr)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(qr, prefix))
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(raw)); err != nil {
		t.Fatalf("payload is not a PNG: %v", err)
	}
}
