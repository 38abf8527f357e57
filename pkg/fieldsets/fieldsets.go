// Package fieldsets describes dashboard forms as grouped field metadata and
// binds model values into it for rendering.
package fieldsets

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the value format of date inputs.
const DateLayout = "2006-01-02"

type FieldType string

const (
	Text     FieldType = "text"
	TextArea FieldType = "textarea"
	Email    FieldType = "email"
	URL      FieldType = "url"
	Number   FieldType = "number"
	Date     FieldType = "date"
	Checkbox FieldType = "checkbox"
	Select   FieldType = "select"
	File     FieldType = "file"
)

type Choice struct {
	Value string
	Label string
}

type Field struct {
	Name     string // form field name, also the model's form tag or snake_case Go name
	Label    string
	Type     FieldType
	Required bool
	Help     string
	Choices  []Choice
	Min, Max string
	Accept   string // file inputs
}

type Fieldset struct {
	Title     string
	Collapsed bool
	Fields    []Field
}

// Form is an ordered list of fieldsets.
type Form []Fieldset

// HasFiles reports whether the form needs multipart encoding.
func (f Form) HasFiles() bool {
	for _, fs := range f {
		for _, fd := range fs.Fields {
			if fd.Type == File {
				return true
			}
		}
	}
	return false
}

// FieldView is a Field with the current value and error.
type FieldView struct {
	Field
	Value   string
	Checked bool
	Error   string
}

type FieldsetView struct {
	Title     string
	Collapsed bool
	Fields    []FieldView
}

// Bind reads values for every field from record (a struct or pointer to one)
// and attaches the messages in errs, keyed by field name.
func (f Form) Bind(record interface{}, errs map[string]string) []FieldsetView {
	values := collect(record)
	out := make([]FieldsetView, 0, len(f))
	for _, fs := range f {
		view := FieldsetView{Title: fs.Title, Collapsed: fs.Collapsed}
		for _, fd := range fs.Fields {
			fv := FieldView{Field: fd, Error: errs[fd.Name]}
			if v, ok := values[fd.Name]; ok {
				fv.Value, fv.Checked = format(v)
			}
			if fv.Error != "" {
				view.Collapsed = false
			}
			view.Fields = append(view.Fields, fv)
		}
		out = append(out, view)
	}
	return out
}

// Decode sets the fields of record (a pointer to a struct) from posted form
// values. File fields are skipped, an empty number keeps the current value, and
// an absent checkbox means false. It returns per-field parse errors.
func (f Form) Decode(record interface{}, value func(name string) string) map[string]string {
	errs := map[string]string{}
	fields := addressable(record)
	for _, fs := range f {
		for _, fd := range fs.Fields {
			v, ok := fields[fd.Name]
			if !ok || !v.CanSet() || fd.Type == File {
				continue
			}
			raw := strings.TrimSpace(value(fd.Name))
			switch fd.Type {
			case Checkbox:
				if v.Kind() == reflect.Bool {
					v.SetBool(raw == "true" || raw == "on" || raw == "1")
				}
			case Date:
				if err := setDate(v, raw); err != nil {
					errs[fd.Name] = fd.Name + " must be a date (YYYY-MM-DD)"
				}
			case Number:
				if raw == "" {
					continue
				}
				n, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || !isInt(v.Kind()) {
					errs[fd.Name] = fd.Name + " must be a whole number"
					continue
				}
				v.SetInt(n)
			default:
				if v.Kind() == reflect.String {
					v.SetString(raw)
				}
			}
		}
	}
	return errs
}

func setDate(v reflect.Value, raw string) error {
	var t time.Time
	if raw != "" {
		parsed, err := time.Parse(DateLayout, raw)
		if err != nil {
			return err
		}
		t = parsed
	}
	switch {
	case v.Type() == timeType:
		v.Set(reflect.ValueOf(t))
	case v.Kind() == reflect.Ptr && v.Type().Elem() == timeType:
		if raw == "" {
			v.Set(reflect.Zero(v.Type()))
		} else {
			v.Set(reflect.ValueOf(&t))
		}
	}
	return nil
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func collect(record interface{}) map[string]reflect.Value {
	out := map[string]reflect.Value{}
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return out
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return out
	}
	walk(v, out)
	return out
}

func addressable(record interface{}) map[string]reflect.Value {
	v := reflect.ValueOf(record)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return map[string]reflect.Value{}
	}
	return collect(record)
}

func walk(v reflect.Value, out map[string]reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fv := v.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			walk(fv, out)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		tag := strings.SplitN(sf.Tag.Get("form"), ",", 2)[0]
		if tag != "" && tag != "-" {
			out[tag] = fv
		}
		if name := snake(sf.Name); name != tag {
			if _, taken := out[name]; !taken {
				out[name] = fv
			}
		}
	}
}

var timeType = reflect.TypeOf(time.Time{})

func format(v reflect.Value) (string, bool) {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if v.Type() == timeType {
		t := v.Interface().(time.Time)
		if t.IsZero() {
			return "", false
		}
		return t.Format(DateLayout), false
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), false
	case reflect.Bool:
		return "true", v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), false
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), false
	default:
		return fmt.Sprint(v.Interface()), false
	}
}

// snake converts a Go field name to snake_case ("StartDate" -> "start_date").
func snake(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
