package util

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

type qrPayload struct {
	UHID  string `json:"uhid"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// GeneratePatientQR renders the patient identity payload as a PNG QR code and
// returns it as a base64 data URL suitable for direct embedding in an <img>
// tag. Generated once per patient, at first registration.
func GeneratePatientQR(uhid, name, phone string) (string, error) {
	data, err := json.Marshal(qrPayload{UHID: uhid, Name: name, Phone: phone})
	if err != nil {
		return "", fmt.Errorf("marshal QR payload: %w", err)
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("encode QR image: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
