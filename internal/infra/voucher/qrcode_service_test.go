package voucher

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_NewCode(t *testing.T) {
	service := NewQRCodeService(256, "M")

	first := service.NewCode()
	second := service.NewCode()

	assert.Regexp(t, `^DST-[0-9A-F]{8}$`, first)
	assert.NotEqual(t, first, second)
}

func TestQRCodeService_GenerateVoucherQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateVoucherQR(uuid.NewString(), service.NewCode())
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_GenerateVoucherQR_MissingFields(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateVoucherQR("", "DST-00000000")
	assert.Error(t, err)

	_, err = service.GenerateVoucherQR(uuid.NewString(), "")
	assert.Error(t, err)
}

func TestQRCodeService_ParseVoucherQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	redemptionID := uuid.NewString()

	valid, err := json.Marshal(VoucherData{RedemptionID: redemptionID, Code: "DST-ABCDEF12", Type: "redemption"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(VoucherData{RedemptionID: redemptionID, Code: "DST-ABCDEF12", Type: "subscription"})
	require.NoError(t, err)
	badID, err := json.Marshal(VoucherData{RedemptionID: "not-a-uuid", Code: "DST-ABCDEF12", Type: "redemption"})
	require.NoError(t, err)
	badCode, err := json.Marshal(VoucherData{RedemptionID: redemptionID, Code: "XYZ", Type: "redemption"})
	require.NoError(t, err)

	gotID, gotCode, err := service.ParseVoucherQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, redemptionID, gotID)
	assert.Equal(t, "DST-ABCDEF12", gotCode)

	tests := []struct {
		name string
		data string
	}{
		{"Invalid JSON", "invalid json"},
		{"Wrong type", string(wrongType)},
		{"Invalid redemption ID", string(badID)},
		{"Invalid code", string(badCode)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.ParseVoucherQR(tt.data)
			assert.Error(t, err)
		})
	}
}
