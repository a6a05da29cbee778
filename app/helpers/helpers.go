package helpers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var tomanFormatter = accounting.Accounting{
	Symbol:    "تومان",
	Precision: 0,
	Thousand:  ",",
	Format:    "%v %s",
}

var usdFormatter = accounting.Accounting{
	Symbol:    "$",
	Precision: 2,
	Thousand:  ",",
}

// FormatToman renders a Toman price for API payloads, e.g. "1,250,000 تومان".
func FormatToman(amount decimal.Decimal) string {
	return tomanFormatter.FormatMoneyDecimal(amount)
}

// FormatUSD renders a dollar price, e.g. "$49.99".
func FormatUSD(amount decimal.Decimal) string {
	return usdFormatter.FormatMoneyDecimal(amount)
}

func GenerateSlug(s string) string {
	return slug.Make(s)
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s must be one of: %s.", err.Field(), err.Param())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s characters.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s characters.", err.Field(), err.Param())
		case "hexcolor":
			errorMessages[field] = fmt.Sprintf("%s must be a hex color code.", err.Field())
		default:
			errorMessages[field] = fmt.Sprintf("Validation %s failed on field %s.", err.Tag(), err.Field())
		}
	}
	return errorMessages
}
