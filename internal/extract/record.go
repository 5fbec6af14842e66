// Package extract turns heterogeneous candidate and requirement records into plain text
// and a few structured hints (location, remote flag) for the scorers.
package extract

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Record is an opaque source record: a candidate profile, a resume, or a job requirement.
type Record map[string]any

// Fields is the optional-field view of a Record. Keys are matched without regard to
// case, underscores or dashes, so "work_mode", "workMode" and "WorkMode" are equivalent.
// Nested values are flattened to space-joined text.
type Fields struct {
	Text             string `mapstructure:"text"`
	Description      string `mapstructure:"description"`
	Summary          string `mapstructure:"summary"`
	Content          string `mapstructure:"content"`
	Headline         string `mapstructure:"headline"`
	Title            string `mapstructure:"title"`
	Requirements     string `mapstructure:"requirements"`
	Responsibilities string `mapstructure:"responsibilities"`
	Qualifications   string `mapstructure:"qualifications"`
	Location         string `mapstructure:"location"`
	City             string `mapstructure:"city"`
	State            string `mapstructure:"state"`
	Country          string `mapstructure:"country"`
	Remote           bool   `mapstructure:"remote"`
	IsRemote         bool   `mapstructure:"isremote"`
	WorkMode         string `mapstructure:"workmode"`
	Industry         string `mapstructure:"industry"`
}

// DecodeError represents a record that could not be fully decoded. The partially
// decoded Fields are still usable.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Decode converts src into Fields. Supported inputs are Record, map[string]any,
// map[string]string and structs; nil decodes to empty Fields. On failure the
// returned Fields hold whatever could be decoded.
func Decode(src any) (Fields, error) {
	var fields Fields
	if src == nil {
		return fields, nil
	}

	input := src
	switch v := src.(type) {
	case Record:
		input = normalizeKeys(v)
	case map[string]any:
		input = normalizeKeys(v)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		input = normalizeKeys(m)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(flattenHook, truthyHook),
		WeaklyTypedInput: true,
		Result:           &fields,
	})
	if err != nil {
		return fields, &DecodeError{Message: "failed to build decoder", Cause: err}
	}
	if err := decoder.Decode(input); err != nil {
		return fields, &DecodeError{Message: "record has unusable fields", Cause: err}
	}
	return fields, nil
}

// normalizeKeys lower-cases keys and removes "_" and "-" so tag names can be written once.
func normalizeKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		key := strings.ToLower(k)
		key = strings.ReplaceAll(key, "_", "")
		key = strings.ReplaceAll(key, "-", "")
		if _, exists := out[key]; exists && v == nil {
			continue
		}
		out[key] = v
	}
	return out
}

// flattenHook turns nested maps and slices into text when the target is a string.
func flattenHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return flatten(data), nil
	default:
		return data, nil
	}
}

// truthyHook accepts the usual spellings of a yes/no flag.
func truthyHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Bool || from.Kind() != reflect.String {
		return data, nil
	}
	switch strings.ToLower(strings.TrimSpace(data.(string))) {
	case "yes", "y", "on", "remote":
		return true, nil
	case "no", "n", "off", "":
		return false, nil
	}
	if b, err := strconv.ParseBool(data.(string)); err == nil {
		return b, nil
	}
	return false, nil
}

// flatten renders an arbitrary nested value as space-joined text. Map values are
// visited in key order so the result is deterministic.
func flatten(v any) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if s := flatten(rv.Index(i).Interface()); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		values := make(map[string]reflect.Value, rv.Len())
		for _, k := range rv.MapKeys() {
			ks := fmt.Sprint(k.Interface())
			keys = append(keys, ks)
			values[ks] = rv.MapIndex(k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if s := flatten(values[k].Interface()); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case reflect.Bool:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
