package checkout

import (
	"regexp"
	"strings"
)

// Buyer field names as the storefront posts them.
const (
	FieldBuyerName     = "buyerName"
	FieldBuyerLastName = "buyerLastName"
	FieldBuyerEmail    = "buyerEmail"
	FieldBuyerPhone    = "buyerPhone"
	FieldBuyerDNI      = "buyerDni"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	dniPattern   = regexp.MustCompile(`^\d{7,8}$`)
	phonePattern = regexp.MustCompile(`^\d{8,15}$`)
)

// Form holds the buyer draft for one purchase session. Every edit revalidates
// the touched field; FieldErrors is the accumulated per-field result.
type Form struct {
	BuyerName     string            `json:"buyerName"`
	BuyerLastName string            `json:"buyerLastName"`
	BuyerEmail    string            `json:"buyerEmail"`
	BuyerPhone    string            `json:"buyerPhone"`
	BuyerDNI      string            `json:"buyerDni"`
	Quantity      int               `json:"quantity"`
	FieldErrors   map[string]string `json:"fieldErrors"`
}

func NewForm() *Form {
	return &Form{Quantity: 1, FieldErrors: make(map[string]string)}
}

// SetField stores the value and revalidates just that field. Unknown field
// names are ignored.
func (f *Form) SetField(field, value string) {
	switch field {
	case FieldBuyerName:
		f.BuyerName = value
	case FieldBuyerLastName:
		f.BuyerLastName = value
	case FieldBuyerEmail:
		f.BuyerEmail = value
	case FieldBuyerPhone:
		f.BuyerPhone = value
	case FieldBuyerDNI:
		f.BuyerDNI = value
	default:
		return
	}
	f.validateField(field, value)
}

// SetQuantity clamps at a floor of one entry. There is deliberately no
// ceiling here: the backing API owns capacity and sold-out state.
func (f *Form) SetQuantity(quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	f.Quantity = quantity
}

func (f *Form) validateField(field, value string) {
	switch field {
	case FieldBuyerName:
		switch {
		case strings.TrimSpace(value) == "":
			f.FieldErrors[field] = "El nombre es obligatorio"
		case len([]rune(value)) < 2:
			f.FieldErrors[field] = "El nombre debe tener al menos 2 caracteres"
		default:
			delete(f.FieldErrors, field)
		}
	case FieldBuyerLastName:
		switch {
		case strings.TrimSpace(value) == "":
			f.FieldErrors[field] = "El apellido es obligatorio"
		case len([]rune(value)) < 2:
			f.FieldErrors[field] = "El apellido debe tener al menos 2 caracteres"
		default:
			delete(f.FieldErrors, field)
		}
	case FieldBuyerEmail:
		switch {
		case strings.TrimSpace(value) == "":
			f.FieldErrors[field] = "El email es obligatorio"
		case !emailPattern.MatchString(value):
			f.FieldErrors[field] = "Ingresa un email válido"
		default:
			delete(f.FieldErrors, field)
		}
	case FieldBuyerDNI:
		switch {
		case strings.TrimSpace(value) == "":
			f.FieldErrors[field] = "El DNI es obligatorio"
		case !dniPattern.MatchString(value):
			f.FieldErrors[field] = "El DNI debe tener 7 u 8 dígitos"
		default:
			delete(f.FieldErrors, field)
		}
	case FieldBuyerPhone:
		stripped := stripSpaces(value)
		if value != "" && !phonePattern.MatchString(stripped) {
			f.FieldErrors[field] = "Ingresa un teléfono válido (8 a 15 dígitos)"
		} else {
			delete(f.FieldErrors, field)
		}
	}
}

// Validate runs the whole-form check used to advance past the form phase:
// every field revalidated, no field errors, and the four mandatory fields
// non-empty.
func (f *Form) Validate() bool {
	f.validateField(FieldBuyerName, f.BuyerName)
	f.validateField(FieldBuyerLastName, f.BuyerLastName)
	f.validateField(FieldBuyerEmail, f.BuyerEmail)
	f.validateField(FieldBuyerDNI, f.BuyerDNI)
	if f.BuyerPhone != "" {
		f.validateField(FieldBuyerPhone, f.BuyerPhone)
	}
	return len(f.FieldErrors) == 0 &&
		f.BuyerName != "" &&
		f.BuyerLastName != "" &&
		f.BuyerEmail != "" &&
		f.BuyerDNI != ""
}

func (f *Form) Reset() {
	f.BuyerName = ""
	f.BuyerLastName = ""
	f.BuyerEmail = ""
	f.BuyerPhone = ""
	f.BuyerDNI = ""
	f.Quantity = 1
	f.FieldErrors = make(map[string]string)
}

// Phone returns the buyer phone as the ticket-creation call wants it: nil
// when the optional field was left empty.
func (f *Form) Phone() *string {
	if f.BuyerPhone == "" {
		return nil
	}
	phone := f.BuyerPhone
	return &phone
}

func stripSpaces(value string) string {
	return strings.Join(strings.Fields(value), "")
}
