package fieldmap

import "strings"

// Legacy разбирает только плоские объекты {"k":"v",...}.
type Legacy struct{}

// Decode делит содержимое между фигурными скобками по каждой запятой, затем
// каждую пару по первому двоеточию. У ключа и значения обрезаются пробелы,
// после чего удаляются все символы двойной кавычки. Повторный ключ
// перезаписывает предыдущий.
func (Legacy) Decode(body string) FieldMap {
	fields := make(FieldMap)
	if body == "" {
		return fields
	}

	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, "{") || !strings.HasSuffix(body, "}") {
		return fields
	}
	body = body[1 : len(body)-1]

	for _, pair := range strings.Split(body, ",") {
		key, value, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		key = strings.ReplaceAll(strings.TrimSpace(key), `"`, "")
		value = strings.ReplaceAll(strings.TrimSpace(value), `"`, "")
		fields[key] = value
	}

	return fields
}
