package validators

import (
	"employeedocs/cmd/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"reflect"
	"strings"
)

// New returns a validator with the custom tags registered and json names used
// in field errors.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	_ = validate.RegisterValidation("cpf", CPF)
	_ = validate.RegisterValidation("datebr", DateBR)
	_ = validate.RegisterValidation("nodupes", NoDupes)
	return validate
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		name = field.Tag.Get("param")
	}
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

// CPF accepts strings (or string pointers) holding a valid CPF, formatted or not.
func CPF(fl validator.FieldLevel) bool {
	val, ok := stringValue(fl.Field())
	if !ok {
		return false
	}
	return utils.IsCPFValid(val)
}

// DateBR accepts DD/MM/YYYY dates.
func DateBR(fl validator.FieldLevel) bool {
	val, ok := stringValue(fl.Field())
	if !ok {
		return false
	}
	_, err := utils.ParseDateBR(val)
	return err == nil
}

func NoDupes(fl validator.FieldLevel) bool {
	slice := fl.Field()
	if slice.Kind() != reflect.Slice {
		log.Warnf("validator 'nodupes' applied to non-slice type: %s\n", slice.Kind().String())
		return false
	}

	length := slice.Len()
	seen := make(map[any]bool, length)
	for i := 0; i < length; i++ {
		val := slice.Index(i).Interface()
		if _, exists := seen[val]; exists {
			return false
		}
		seen[val] = true
	}
	return true
}

func stringValue(field reflect.Value) (string, bool) {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return "", false
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return "", false
	}
	return field.String(), true
}
