package models

// UserInfo — публичная часть пользователя, возвращаемая клиенту.
type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

// AuthResult — итог регистрации или входа.
// При неудаче User равен nil и в ответ попадает только Message.
type AuthResult struct {
	User    *UserInfo `json:"user,omitempty"`
	Message string    `json:"message"`
}

// Success возвращает результат с данными пользователя.
func Success(user UserInfo, message string) AuthResult {
	return AuthResult{User: &user, Message: message}
}

// Failure возвращает результат только с сообщением.
func Failure(message string) AuthResult {
	return AuthResult{Message: message}
}

// OK сообщает, содержит ли результат пользователя.
func (r AuthResult) OK() bool {
	return r.User != nil
}
