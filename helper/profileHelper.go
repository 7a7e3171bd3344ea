package helper

import (
	"strings"

	"github.com/Dhamodran16/SwadExpress/models"
)

// ValidPaymentMethods are the preferred-payment choices a profile may carry.
var ValidPaymentMethods = []string{"Google Pay", "Apple Pay", "Cash on Delivery", "Credit/Debit Card"}

// RequiredProfileFields are the fields checkout needs before an order can be
// placed.
var RequiredProfileFields = []string{"displayName", "email", "phone", "address", "deliveryAddress", "preferredPaymentMethod"}

func profileField(user models.User, field string) string {
	switch field {
	case "displayName":
		return user.DisplayName
	case "email":
		return user.Email
	case "phone":
		return user.Phone
	case "address":
		return user.HomeAddress
	case "deliveryAddress":
		return user.DeliveryAddress
	case "preferredPaymentMethod":
		return user.PreferredPaymentMethod
	default:
		return ""
	}
}

// IsProfileComplete reports whether every required field is a non-blank
// string, and that a required preferred payment method is one of the valid
// choices.
func IsProfileComplete(user models.User, required []string) bool {
	for _, field := range required {
		value := profileField(user, field)
		if strings.TrimSpace(value) == "" {
			return false
		}
		if field == "preferredPaymentMethod" && !validPayment(value) {
			return false
		}
	}
	return true
}

func validPayment(method string) bool {
	for _, valid := range ValidPaymentMethods {
		if method == valid {
			return true
		}
	}
	return false
}

// FormatDefaultAddress renders the default entry of an address list as a
// single comma-joined string, mirroring how the profile's defaultAddress
// field is kept in sync.
func FormatDefaultAddress(addresses []models.Address) string {
	for _, address := range addresses {
		if address.IsDefault {
			parts := []string{}
			for _, part := range []string{address.Street, address.City, address.State, address.PostalCode} {
				if part != "" {
					parts = append(parts, part)
				}
			}
			return strings.Join(parts, ", ")
		}
	}
	return ""
}
