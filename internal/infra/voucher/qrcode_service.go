package voucher

import (
	"encoding/json"
	"fmt"
	"strings"

	"destinos/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	voucherType   = "redemption"
	voucherPrefix = "DST-"
	codeLength    = 8
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// VoucherData is the payload encoded in a redemption voucher.
type VoucherData struct {
	RedemptionID string `json:"redemption_id"`
	Code         string `json:"code"`
	Type         string `json:"type"`
}

// NewQRCodeService creates a voucher service rendering QR codes of the given size and level.
func NewQRCodeService(size int, errorCorrectionLevel string) service.VoucherService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewCode returns a short human-readable voucher code such as DST-1A2B3C4D.
func (s *qrcodeService) NewCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")

	return voucherPrefix + strings.ToUpper(raw[:codeLength])
}

// GenerateVoucherQR renders the voucher payload as a PNG QR code.
func (s *qrcodeService) GenerateVoucherQR(redemptionID, voucherCode string) ([]byte, error) {
	if redemptionID == "" || voucherCode == "" {
		return nil, fmt.Errorf("redemption ID and voucher code are required")
	}

	jsonData, err := json.Marshal(VoucherData{
		RedemptionID: redemptionID,
		Code:         voucherCode,
		Type:         voucherType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal voucher data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseVoucherQR decodes a scanned voucher payload into its redemption ID and code.
func (s *qrcodeService) ParseVoucherQR(qrData string) (string, string, error) {
	var data VoucherData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", "", fmt.Errorf("failed to unmarshal voucher data: %w", err)
	}

	if data.Type != voucherType {
		return "", "", fmt.Errorf("invalid voucher type: %s", data.Type)
	}

	if _, err := uuid.Parse(data.RedemptionID); err != nil {
		return "", "", fmt.Errorf("failed to parse redemption ID: %w", err)
	}
	if !strings.HasPrefix(data.Code, voucherPrefix) {
		return "", "", fmt.Errorf("invalid voucher code: %s", data.Code)
	}

	return data.RedemptionID, data.Code, nil
}
