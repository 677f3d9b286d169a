package service

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(trackingID string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(trackingID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/track.html?tracking_id=%s", g.BaseURL, url.QueryEscape(trackingID))
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
