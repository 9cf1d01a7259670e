package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRService generates check-in QR codes for event tickets.
type QRService struct {
	baseURL string // e.g. "https://coworkly.co/checkin/"
}

func NewQRService(baseURL string) *QRService {
	return &QRService{
		baseURL: baseURL,
	}
}

// GenerateTicketQR returns a PNG QR code pointing at the check-in URL for
// the given ticket code.
func (s *QRService) GenerateTicketQR(ticketCode string, size int) ([]byte, error) {
	fullURL := fmt.Sprintf("%s%s", s.baseURL, ticketCode)

	png, err := qrcode.Encode(fullURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
