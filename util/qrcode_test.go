package util

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePatientQR(t *testing.T) {
	dataURL, err := GeneratePatientQR("HOS25081234", "Asha Rao", "9876543210")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	encoded := strings.TrimPrefix(dataURL, "data:image/png;base64,")
	raw, err := base64.StdEncoding.DecodeString(encoded)
	assert.NoError(t, err)

	// PNG magic bytes
	assert.True(t, len(raw) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}

func TestGeneratePatientQR_Stable(t *testing.T) {
	first, err := GeneratePatientQR("HOS25080001", "Ravi Kumar", "9000000001")
	assert.NoError(t, err)
	second, err := GeneratePatientQR("HOS25080001", "Ravi Kumar", "9000000001")
	assert.NoError(t, err)
	assert.Equal(t, first, second, "same payload must render the same artifact")
}
