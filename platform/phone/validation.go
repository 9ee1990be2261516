package phone

import "github.com/go-playground/validator/v10"

// Validation tags understood by the phone field validators.
const (
	TagHolyLand = "holyland"
	TagMobile   = "il_mobile"
	TagLandLine = "il_landline"
)

// Validations maps each tag to its field validator. Fields may be given in
// local or international form.
func Validations() map[string]validator.Func {
	return map[string]validator.Func{
		TagHolyLand: fieldCheck(HolyLand.IsValid),
		TagMobile:   fieldCheck(HolyLand.IsMobile),
		TagLandLine: fieldCheck(HolyLand.IsLandLine),
	}
}

func fieldCheck(pred func(HolyLand) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pred(NewHolyLand(fl.Field().String()))
	}
}
