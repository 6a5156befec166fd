// Package qrcode renders payment QR codes for fee slips.
package qrcode

import (
	"fmt"
	"strconv"
	"strings"

	"admission-backend/src/models"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// FeeSlipPayload is the text encoded in a fee slip QR code:
// FEESLIP|<slip id>|<application id>|<amount>|<due date or empty>.
func FeeSlipPayload(slip models.FeeSlip) string {
	due := ""
	if slip.DueDate != nil {
		due = slip.DueDate.UTC().Format("2006-01-02")
	}
	return strings.Join([]string{
		"FEESLIP",
		slip.ID,
		slip.ApplicationID,
		strconv.FormatFloat(slip.Amount, 'f', 2, 64),
		due,
	}, "|")
}

// FeeSlipPNG encodes the fee slip payload as a PNG of size pixels.
func FeeSlipPNG(slip models.FeeSlip, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(FeeSlipPayload(slip), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode fee slip %s: %w", slip.ID, err)
	}
	return png, nil
}
