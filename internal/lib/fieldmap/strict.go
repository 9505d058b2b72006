package fieldmap

import (
	"strconv"
	"strings"

	"github.com/go-chi/render"
)

// Strict разбирает тело как JSON-объект.
type Strict struct{}

// Decode сохраняет строковые значения как есть, числа и булевы значения
// переводит в текст. null, вложенные объекты и массивы пропускаются.
// Некорректный JSON даёт пустую карту.
func (Strict) Decode(body string) FieldMap {
	fields := make(FieldMap)

	var raw map[string]any
	if err := render.DecodeJSON(strings.NewReader(body), &raw); err != nil {
		return fields
	}

	for key, value := range raw {
		switch v := value.(type) {
		case string:
			fields[key] = v
		case float64:
			fields[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			fields[key] = strconv.FormatBool(v)
		}
	}

	return fields
}
