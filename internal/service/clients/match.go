package clients

import (
	"strings"
	"unicode"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// DefaultMatchPolicy сначала точное совпадение телефона,
// затем имя (без учёта регистра) вместе с телефоном, приведённым к цифрам
type DefaultMatchPolicy struct{}

// Match возвращает первого подходящего клиента или nil
func (DefaultMatchPolicy) Match(clients []*domain.Client, name, phone string) *domain.Client {
	phone = strings.TrimSpace(phone)
	for _, c := range clients {
		if strings.TrimSpace(c.Phone) == phone {
			return c
		}
	}

	name = strings.TrimSpace(name)
	digits := NormalizePhone(phone)
	if digits == "" {
		return nil
	}
	for _, c := range clients {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) && NormalizePhone(c.Phone) == digits {
			return c
		}
	}
	return nil
}

// NormalizePhone оставляет только цифры; международный префикс 38 для номеров 0XX отбрасывается
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 12 && strings.HasPrefix(digits, "380") {
		return digits[2:]
	}
	return digits
}
