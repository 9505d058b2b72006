// Package fieldmap превращает тело HTTP-запроса в плоский набор строковых полей.
//
// Пакет содержит два декодера:
//   - Legacy — построчный разбор вида {"k":"v",...} без настоящего JSON-парсера.
//     Сохраняет прежний контракт разбора вместе с ограничениями: вложенные
//     объекты, массивы и экранированные кавычки/запятые дают неполный результат.
//   - Strict — разбор обычным JSON-декодером, нестроковые скаляры приводятся к тексту.
//
// Ни один из декодеров не возвращает ошибку: при неудаче получается пустая
// или неполная карта.
package fieldmap

import "fmt"

// FieldMap — поля запроса. Отсутствующий ключ читается как пустая строка.
type FieldMap map[string]string

// Decoder разбирает тело запроса в FieldMap.
type Decoder interface {
	Decode(body string) FieldMap
}

const (
	// KindLegacy — разбор, совместимый с существующими клиентами.
	KindLegacy = "legacy"
	// KindStrict — разбор полноценным JSON-декодером.
	KindStrict = "strict"
)

// New возвращает декодер по его названию из конфига.
func New(kind string) (Decoder, error) {
	switch kind {
	case KindLegacy, "":
		return Legacy{}, nil
	case KindStrict:
		return Strict{}, nil
	default:
		return nil, fmt.Errorf("fieldmap.New: unknown decoder %q", kind)
	}
}
