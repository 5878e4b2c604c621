package delivery

import (
	"regexp"
)

// Channel names the provider that accepted a notification.
type Channel string

const (
	ChannelFast2SMS Channel = "fast2sms"
	ChannelTwilio   Channel = "twilio"
	ChannelLog      Channel = "log"
	ChannelNone     Channel = "none"
)

type Outcome struct {
	Delivered bool
	Channel   Channel
}

func Delivered(ch Channel) Outcome {
	return Outcome{Delivered: true, Channel: ch}
}

func NotDelivered(ch Channel) Outcome {
	return Outcome{Delivered: false, Channel: ch}
}

// Tier names the QR renderer that produced the artifact.
type Tier string

const (
	TierQRCode Tier = "qrcode"
	TierRaster Tier = "raster"
	TierStatic Tier = "static"
	TierNone   Tier = "none"
)

func (t Tier) IsValid() bool {
	switch t {
	case TierQRCode, TierRaster, TierStatic:
		return true
	default:
		return false
	}
}

var nonDigits = regexp.MustCompile(`\D+`)

// NormalizePhone keeps only the digits of a phone number.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}
