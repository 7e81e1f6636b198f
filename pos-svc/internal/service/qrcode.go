package service

import (
	"fmt"
	"net/url"
	"strings"

	"restaurant-pos/pos-svc/internal/domain"

	"github.com/skip2/go-qrcode"
)

// FeedbackQR encodes a link to the feedback page for a bill, printed on the
// receipt.
type FeedbackQR struct {
	BaseURL string
}

func (g FeedbackQR) Generate(billID domain.ID) ([]byte, error) {
	if billID.Empty() {
		return nil, domain.Validationf("bill id is required")
	}
	qrData := fmt.Sprintf("%s/feedback?bill_id=%s", strings.TrimRight(g.BaseURL, "/"), url.QueryEscape(billID.String()))
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
