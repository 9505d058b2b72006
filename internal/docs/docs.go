// Package docs регистрирует OpenAPI-документ сервиса для swag и http-swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/register": {
            "post": {
                "description": "Сохраняет пользователя. Ответ всегда 200, результат передаётся полем message.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Регистрация пользователя",
                "parameters": [
                    {
                        "description": "username, age, gender, contact, email, password, userType",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/RegisterRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "User Registered, Email already exists, Registration Failed или Database Error",
                        "schema": {"$ref": "#/definitions/models.AuthResult"}
                    },
                    "405": {"description": "Метод не поддерживается"}
                }
            },
            "options": {
                "tags": ["Auth"],
                "summary": "CORS preflight",
                "responses": {"200": {"description": "Пустое тело и заголовки CORS"}}
            }
        },
        "/api/auth/login": {
            "post": {
                "description": "Проверяет email и пароль. Ответ всегда 200, результат передаётся полем message.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Вход пользователя",
                "parameters": [
                    {
                        "description": "email, password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Login Success, Invalid Credentials или Database Error",
                        "schema": {"$ref": "#/definitions/models.AuthResult"}
                    },
                    "405": {"description": "Метод не поддерживается"}
                }
            },
            "options": {
                "tags": ["Auth"],
                "summary": "CORS preflight",
                "responses": {"200": {"description": "Пустое тело и заголовки CORS"}}
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка живости",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string", "example": "ann"},
                "age": {"type": "string", "example": "30"},
                "gender": {"type": "string", "example": "female"},
                "contact": {"type": "string", "example": "+1-555-0100"},
                "email": {"type": "string", "example": "ann@example.com"},
                "password": {"type": "string", "example": "secret"},
                "userType": {"type": "string", "example": "patient"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "ann@example.com"},
                "password": {"type": "string", "example": "secret"}
            }
        },
        "models.UserInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "userType": {"type": "string"}
            }
        },
        "models.AuthResult": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/models.UserInfo"},
                "message": {"type": "string", "example": "Login Success"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "OK"},
                "error": {"type": "string"},
                "data": {}
            }
        }
    }
}`

// SwaggerInfo содержит экспортируемую информацию Swagger, чтобы клиенты могли её изменять.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Health Monitoring Auth API",
	Description:      "Регистрация и вход пользователей системы мониторинга здоровья.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
