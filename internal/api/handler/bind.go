package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sirpyerre/user-api/internal/core/domain"
)

// violations accumulates field violations across the binding and validation
// steps of one request so that every failed field is reported together.
// The first violation recorded for a field wins.
type violations struct {
	list []domain.FieldViolation
	seen map[string]struct{}
}

// absorb records err when it is a *domain.ValidationError and returns any
// other error unchanged.
func (v *violations) absorb(err error) error {
	if err == nil {
		return nil
	}
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	if v.seen == nil {
		v.seen = make(map[string]struct{})
	}
	for _, fv := range ve.Violations {
		key := fv.Location + "." + fv.Field
		if _, dup := v.seen[key]; dup {
			continue
		}
		v.seen[key] = struct{}{}
		v.list = append(v.list, fv)
	}
	return nil
}

func (v *violations) err() error {
	if len(v.list) == 0 {
		return nil
	}
	return &domain.ValidationError{Violations: v.list}
}

// bindJSON decodes a JSON body into dst. Type mismatches are reported as
// field violations; the rest of the body is still decoded.
func bindJSON(c echo.Context, dst any) error {
	err := (&echo.DefaultBinder{}).BindBody(c, dst)
	if err == nil {
		return nil
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		field := jsonFieldPath(reflect.TypeOf(dst), ute.Field)
		if field == "" {
			field = "body"
		}
		return domain.NewValidationError(field, domain.LocationBody, "must be of type "+jsonTypeName(ute.Type))
	}
	return err
}

// bindForm decodes an urlencoded or multipart form into dst's `form` fields.
// A request without a body binds nothing and leaves required checks to the
// validator.
func bindForm(c echo.Context, dst any) error {
	req := c.Request()
	ctype := req.Header.Get(echo.HeaderContentType)
	switch {
	case strings.HasPrefix(ctype, echo.MIMEApplicationForm), strings.HasPrefix(ctype, echo.MIMEMultipartForm):
		return (&echo.DefaultBinder{}).BindBody(c, dst)
	case req.ContentLength == 0 || req.Body == nil || req.Body == http.NoBody:
		return nil
	default:
		return echo.ErrUnsupportedMediaType
	}
}

// pathInt parses an integer path parameter.
func pathInt(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, domain.NewValidationError(name, domain.LocationPath, "must be an integer")
	}
	return n, nil
}

// optionalQuery distinguishes an absent query parameter from an empty one.
func optionalQuery(c echo.Context, name string) *string {
	vs, ok := c.QueryParams()[name]
	if !ok || len(vs) == 0 {
		return nil
	}
	v := vs[0]
	return &v
}

func optionalHeader(c echo.Context, name string) *string {
	vs := c.Request().Header.Values(name)
	if len(vs) == 0 {
		return nil
	}
	v := vs[0]
	return &v
}

func optionalCookie(c echo.Context, name string) *string {
	ck, err := c.Cookie(name)
	if err != nil {
		return nil
	}
	v := ck.Value
	return &v
}

// jsonFieldPath rewrites the Go path of a decode error ("UserInput.first_name")
// into its wire form ("first_name") by dropping untagged embedded structs.
func jsonFieldPath(t reflect.Type, path string) string {
	if path == "" {
		return ""
	}
	out := make([]string, 0, strings.Count(path, ".")+1)
	for _, seg := range strings.Split(path, ".") {
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil || t.Kind() != reflect.Struct {
			out = append(out, seg)
			t = nil
			continue
		}
		if f, ok := t.FieldByName(seg); ok && f.Anonymous && f.Tag.Get("json") == "" {
			t = f.Type
			continue
		}
		t = jsonFieldType(t, seg)
		out = append(out, seg)
	}
	return strings.Join(out, ".")
}

// jsonFieldType returns the type of the field whose json name is name, or nil.
func jsonFieldType(t reflect.Type, name string) reflect.Type {
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == name || (tag == "" && f.Name == name) {
			return f.Type
		}
	}
	return nil
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
