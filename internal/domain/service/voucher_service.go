package service

// VoucherService renders and parses the QR voucher handed to a partner at redemption time
type VoucherService interface {
	// NewCode returns a fresh human-typeable voucher code.
	NewCode() string

	// GenerateVoucherQR encodes the redemption reference as a PNG QR code
	GenerateVoucherQR(redemptionID, voucherCode string) ([]byte, error)

	// ParseVoucherQR returns the redemption ID and voucher code from scanned QR data
	ParseVoucherQR(qrData string) (redemptionID string, voucherCode string, err error)
}
