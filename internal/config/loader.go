package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// loadStruct populates cfg's tagged fields from environment variables.
func loadStruct(cfg *Config) error {
	return loadValue(reflect.ValueOf(cfg).Elem())
}

func loadValue(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := loadValue(fieldVal); err != nil {
				return err
			}
			continue
		}

		name := field.Tag.Get("env")
		if name == "" {
			continue
		}
		value := os.Getenv(name)
		if value == "" {
			value = field.Tag.Get("default")
		}
		if value == "" {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", name, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int64:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(i)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}
	return nil
}

// envName maps a validator namespace such as "Config.Logging.Level" to the
// environment variable that feeds the field.
func envName(namespace string) string {
	parts := strings.Split(namespace, ".")
	t := reflect.TypeOf(Config{})
	for _, p := range parts[1:] {
		f, ok := t.FieldByName(p)
		if !ok {
			return namespace
		}
		if tag := f.Tag.Get("env"); tag != "" {
			return tag
		}
		t = f.Type
	}
	return namespace
}
