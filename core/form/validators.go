package form

import (
	"regexp"
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/scholarsync/core"
)

var (
	// custom validation tags & texts
	cardExpiryTag   = "cardexpiry"
	cardExpiryText  = "{0} must be formatted as MM/YY"
	cardExpiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

	academicYearTag   = "academicyear"
	academicYearText  = "{0} must be formatted as YYYY-YYYY"
	academicYearRegex = regexp.MustCompile(`^([0-9]{4})-([0-9]{4})$`)
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(cardExpiryTag, cardExpiryValidation)
	core.RegisterCustomTranslation(validate, translator, cardExpiryTag, cardExpiryText)

	_ = validate.RegisterValidation(academicYearTag, academicYearValidation)
	core.RegisterCustomTranslation(validate, translator, academicYearTag, academicYearText)
}

func cardExpiryValidation(fl validator.FieldLevel) bool {
	return cardExpiryRegex.MatchString(fl.Field().String())
}

// academicYearValidation only allows two consecutive years, e.g. 2024-2025.
func academicYearValidation(fl validator.FieldLevel) bool {
	m := academicYearRegex.FindStringSubmatch(fl.Field().String())
	if m == nil {
		return false
	}
	from, _ := strconv.Atoi(m[1])
	to, _ := strconv.Atoi(m[2])
	return to == from+1
}
