// Package models содержит доменную модель пользователя и результат
// операций регистрации и входа.
package models

// User представляет зарегистрированного пользователя системы.
// Пароль хранится и сравнивается в открытом виде.
type User struct {
	ID       int    // Идентификатор, выдаётся хранилищем при вставке
	Username string // Отображаемое имя
	Age      int    // Возраст, 0 если не передан или не число
	Gender   string
	Contact  string
	Email    string // Уникален на уровне ограничения в БД
	Password string
	UserType string // Тип учётной записи (patient, doctor, ...)
}
