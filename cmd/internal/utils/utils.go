package utils

import (
	"reflect"
	"strings"
	"time"
)

// DateLayoutBR is the DD/MM/YYYY layout accepted for dates in requests.
const DateLayoutBR = "02/01/2006"

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// ParseDateBR parses a DD/MM/YYYY date as UTC midnight, in epoch millis.
func ParseDateBR(value string) (int64, error) {
	t, err := time.ParseInLocation(DateLayoutBR, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// Sanitize trims every string reachable from the struct pointed by o: plain
// strings, string pointers, string slices, string maps and nested structs.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}
	sanitizeStruct(v)
}

func sanitizeStruct(v reflect.Value) {
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if field.IsNil() {
				continue
			}
			elem := field.Elem()
			switch elem.Kind() {
			case reflect.String:
				elem.SetString(sanitizeString(elem.String()))
			case reflect.Struct:
				sanitizeStruct(elem)
			}

		case reflect.Struct:
			sanitizeStruct(field)

		case reflect.Slice:
			switch field.Type().Elem().Kind() {
			case reflect.String:
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			case reflect.Struct:
				for j := 0; j < field.Len(); j++ {
					sanitizeStruct(field.Index(j))
				}
			}

		case reflect.Map:
			if field.Type().Elem().Kind() != reflect.String || field.IsNil() {
				continue
			}
			iter := field.MapRange()
			for iter.Next() {
				field.SetMapIndex(iter.Key(), reflect.ValueOf(sanitizeString(iter.Value().String())).Convert(field.Type().Elem()))
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
