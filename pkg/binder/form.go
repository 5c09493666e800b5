package binder

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
)

// DefaultMaxMemory caps memory used when parsing multipart forms.
const DefaultMaxMemory = 10 << 20

// Form binds url-encoded and multipart form values into fields tagged
// `form:"name"`. Supported field types are string, []string, bool and int.
// Requests with another content type are not applicable.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mt, err := mediaType(r)
		if err != nil {
			return ErrBinderNotApplicable
		}

		switch mt {
		case "application/x-www-form-urlencoded":
			err = r.ParseForm()
		case "multipart/form-data":
			err = r.ParseMultipartForm(DefaultMaxMemory)
		default:
			return ErrBinderNotApplicable
		}
		if err != nil {
			return errors.Join(ErrFailedToParseForm, err)
		}

		return bindValues(v, r.PostForm, "form")
	}
}

func bindValues(v any, values map[string][]string, tag string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a non-nil pointer to struct", ErrFailedToParseForm)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		sf := rt.Field(i)
		name := sf.Tag.Get(tag)
		if name == "" || name == "-" || !sf.IsExported() {
			continue
		}
		vals, ok := values[name]
		if !ok || len(vals) == 0 {
			continue
		}
		if err := setField(rv.Field(i), vals); err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrFailedToParseForm, name, err)
		}
	}
	return nil
}

func setField(f reflect.Value, vals []string) error {
	switch f.Kind() {
	case reflect.String:
		f.SetString(vals[0])
	case reflect.Bool:
		// unchecked checkboxes are absent, any present value means on
		b, err := strconv.ParseBool(vals[0])
		if err != nil {
			b = vals[0] == "on"
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int64, reflect.Int32:
		n, err := strconv.ParseInt(vals[0], 10, 64)
		if err != nil {
			return err
		}
		f.SetInt(n)
	case reflect.Slice:
		if f.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", f.Type())
		}
		f.Set(reflect.ValueOf(append([]string(nil), vals...)))
	default:
		return fmt.Errorf("unsupported type %s", f.Type())
	}
	return nil
}
