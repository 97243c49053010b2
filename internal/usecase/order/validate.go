package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/streamvault/payment-service/internal/domain"
	orderdto "github.com/streamvault/payment-service/internal/usecase/dto/order"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	maxEmailLength      = 254
	maxPlanNameLength   = 100
	maxDeviceLength     = 50
	maxDeviceInfoLength = 500
)

func validateEmail(email string) bool {
	return emailRegex.MatchString(email) && len(email) <= maxEmailLength
}

// sanitizeString strips HTML-significant characters and caps length.
// Free-text fields end up in admin views and emails, so they are cleaned
// on the way in. Never use it on the email: quotes and ampersands are
// legal in a local part and must survive storage.
func sanitizeString(s string, maxLength int) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer("<", "", ">", "", "\"", "", "'", "", "&", "")
	s = replacer.Replace(s)
	return capAtRuneBoundary(s, maxLength)
}

// trimAndCap is the light cleanup for fields whose exact characters must
// be preserved.
func trimAndCap(s string, maxLength int) string {
	return capAtRuneBoundary(strings.TrimSpace(s), maxLength)
}

// capAtRuneBoundary caps s at maxLength bytes, backing off so a multi-byte
// rune is never split.
func capAtRuneBoundary(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	cut := maxLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// validateCreatePayment rejects bad input before any side effect happens.
func (uc *DefaultPaymentUsecase) validateCreatePayment(input *orderdto.CreatePaymentInput) error {
	if input.Email == "" || !validateEmail(input.Email) {
		return domain.ErrInvalidEmail
	}

	if !domain.ValidPlanID(input.PlanID) {
		return domain.ErrInvalidPlanID
	}

	// Prices are pinned per plan server-side to defend against tampering.
	if !domain.ValidPlanPrice(input.PlanID, input.Price) {
		return domain.ErrInvalidPrice
	}
	if input.Price <= 0 || input.Price >= uc.Settings.PriceCeiling {
		return domain.ErrInvalidPrice
	}

	if input.PlanName == "" || len(input.PlanName) > maxPlanNameLength {
		return domain.ErrInvalidPlanName
	}

	return nil
}
