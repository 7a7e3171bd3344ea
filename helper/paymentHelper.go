package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Dhamodran16/SwadExpress/models"
	"github.com/google/uuid"
)

var (
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])\/([0-9]{2})$`)
	cardCVVPattern    = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// ValidateCardDetails checks a credit card variant: 16-digit number (spaces
// allowed), MM/YY expiry and a 3 or 4 digit CVV.
func ValidateCardDetails(details models.PaymentDetails) error {
	if details.CardNumber == "" || details.CardName == "" || details.CardExpiry == "" || details.CardCVV == "" {
		return errors.New("missing card details")
	}
	if len(strings.ReplaceAll(details.CardNumber, " ", "")) != 16 {
		return errors.New("card number must be 16 digits")
	}
	if !cardExpiryPattern.MatchString(details.CardExpiry) {
		return errors.New("card expiry must be in MM/YY format")
	}
	if !cardCVVPattern.MatchString(details.CardCVV) {
		return errors.New("invalid CVV")
	}
	return nil
}

// ValidatePaymentMethod validates the tagged payment variant. Digital
// payments without a code get one generated in place.
func ValidatePaymentMethod(payment *models.PaymentMethod) error {
	switch payment.Type {
	case "credit":
		return ValidateCardDetails(payment.Details)
	case "digital":
		if payment.Details.DigitalPaymentCode == "" {
			payment.Details.DigitalPaymentCode = GeneratePaymentCode()
		}
		return nil
	case "cash":
		return nil
	default:
		return fmt.Errorf("unknown payment method %q", payment.Type)
	}
}

// GeneratePaymentCode returns a short code for a digital payment.
func GeneratePaymentCode() string {
	return "PAY-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// FormatPaymentMethod renders the variant as a display string: a masked card
// for credit, the code for digital, or "Cash on Delivery".
func FormatPaymentMethod(payment models.PaymentMethod) string {
	switch payment.Type {
	case "credit":
		number := strings.ReplaceAll(payment.Details.CardNumber, " ", "")
		if len(number) >= 4 {
			return "•••• " + number[len(number)-4:]
		}
		return "•••• ????"
	case "digital":
		return fmt.Sprintf("Digital Payment (Code: %s)", payment.Details.DigitalPaymentCode)
	case "cash":
		return "Cash on Delivery"
	default:
		return payment.Type
	}
}
