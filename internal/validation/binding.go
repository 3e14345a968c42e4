package validation

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"reflect"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// JSON разбирает объект по одному полю, чтобы ошибка типа в одном поле не
// скрывала нарушения в остальных. Возвращаемая ошибка всегда *Error.
var JSON jsonBinding

var _ binding.BindingBody = JSON

type jsonBinding struct{}

func (jsonBinding) Name() string {
	return "json"
}

func (b jsonBinding) Bind(req *http.Request, obj any) error {
	if req == nil || req.Body == nil {
		return single([]string{"body"}, "request body is required", TypeMissing)
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return single([]string{"body"}, err.Error(), TypeInvalid)
	}
	return b.BindBody(body, obj)
}

func (jsonBinding) BindBody(body []byte, obj any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return single([]string{"body"}, "request body is required", TypeMissing)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return fromDecodeError(err)
	}
	if raw == nil {
		return single([]string{"body"}, "body must be a JSON object", TypeTypeError)
	}

	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return single([]string{"body"}, fmt.Sprintf("cannot bind into %T", obj), TypeInvalid)
	}
	v := rv.Elem()
	t := v.Type()

	out := &Error{}
	order := make(map[string]int, t.NumField())
	badType := make(map[string]bool)

	for i := range t.NumField() {
		sf := t.Field(i)
		name := jsonFieldName(sf)
		if !sf.IsExported() || name == "" {
			continue
		}
		order[name] = i

		msg, ok := raw[name]
		if !ok {
			continue
		}
		if vs := decodeField(v.Field(i), msg, []string{"body", name}); len(vs) > 0 {
			out.Violations = append(out.Violations, vs...)
			badType[name] = true
		}
	}

	if err := binding.Validator.ValidateStruct(obj); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return single([]string{"body"}, err.Error(), TypeInvalid)
		}
		for _, fe := range fieldErrs {
			// поле с ошибкой типа уже учтено
			if badType[fe.Field()] {
				continue
			}
			out.Violations = append(out.Violations, fromFieldError(fe))
		}
	}

	if len(out.Violations) == 0 {
		return nil
	}
	slices.SortStableFunc(out.Violations, func(a, b Violation) int {
		return cmp.Compare(order[a.Loc[1]], order[b.Loc[1]])
	})
	return out
}

// decodeField: null равен отсутствующему ключу, элементы списка
// проверяются по одному.
func decodeField(dst reflect.Value, msg json.RawMessage, loc []string) []Violation {
	if isNull(msg) {
		return nil
	}

	t := dst.Type()
	switch t.Kind() {
	case reflect.Pointer:
		elem := reflect.New(t.Elem())
		if v, ok := decodeValue(elem.Elem(), msg, loc); !ok {
			return []Violation{v}
		}
		dst.Set(elem)
		return nil

	case reflect.Slice:
		var items []json.RawMessage
		if err := json.Unmarshal(msg, &items); err != nil {
			return []Violation{typeViolation(loc, t)}
		}
		list := reflect.MakeSlice(t, len(items), len(items))
		var vs []Violation
		for i, item := range items {
			itemLoc := append(slices.Clone(loc), strconv.Itoa(i))
			if isNull(item) {
				vs = append(vs, typeViolation(itemLoc, t.Elem()))
				continue
			}
			if v, ok := decodeValue(list.Index(i), item, itemLoc); !ok {
				vs = append(vs, v)
			}
		}
		if len(vs) > 0 {
			return vs
		}
		dst.Set(list)
		return nil

	default:
		if v, ok := decodeValue(dst, msg, loc); !ok {
			return []Violation{v}
		}
		return nil
	}
}

// decodeValue: целые поля принимают и числа без дробной части, например 2.0.
func decodeValue(dst reflect.Value, msg json.RawMessage, loc []string) (Violation, bool) {
	if err := json.Unmarshal(msg, dst.Addr().Interface()); err == nil {
		return Violation{}, true
	}

	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var f float64
		if json.Unmarshal(msg, &f) == nil && f == math.Trunc(f) &&
			f >= math.MinInt64 && f < math.MaxInt64 && !dst.OverflowInt(int64(f)) {
			dst.SetInt(int64(f))
			return Violation{}, true
		}
	}

	return typeViolation(loc, dst.Type()), false
}

func typeViolation(loc []string, t reflect.Type) Violation {
	return Violation{
		Loc:  loc,
		Msg:  fmt.Sprintf("value is not a valid %s", kindName(t)),
		Type: TypeTypeError,
	}
}

func isNull(msg json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(msg), []byte("null"))
}
