package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode renders content as a PNG and returns the raw bytes.
func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GenerateTableQR builds the guest menu URL for a table and returns it as a
// data URL suitable for direct embedding in the dashboard.
func GenerateTableQR(tableNumber, baseUrl string) (string, error) {
	content := fmt.Sprintf("%s/menu?table=%s", baseUrl, tableNumber)
	data, err := GenerateQRCode(content, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
