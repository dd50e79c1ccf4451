package validators

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

// CurveSizeTag is the struct tag name under which CurveSizeValidation is registered.
const CurveSizeTag = "curvesize"

// SupportedCurveSizes lists the NIST prime curve sizes (in bits) an ECDSA key can be generated for.
var SupportedCurveSizes = []int{224, 256, 384, 521}

// CurveSizeValidation validates that the field holds a supported elliptic curve size.
func CurveSizeValidation(fl validator.FieldLevel) bool {
	return IsSupportedCurveSize(int(fl.Field().Int()))
}

// IsSupportedCurveSize reports whether bits names one of SupportedCurveSizes.
func IsSupportedCurveSize(bits int) bool {
	return slices.Contains(SupportedCurveSizes, bits)
}

// New returns a validator with the project's custom rules registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(CurveSizeTag, CurveSizeValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
