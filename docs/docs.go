// Package docs holds the swagger document served at /swagger/index.html.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/telefonos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Telefono"],
                "summary": "List phones",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Telefono"],
                "summary": "Create a phone",
                "parameters": [
                    {"description": "phone", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.TelefonoRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/telefonos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Telefono"],
                "summary": "Get a phone",
                "parameters": [
                    {"type": "integer", "description": "phone id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Telefono"],
                "summary": "Replace a phone",
                "parameters": [
                    {"type": "integer", "description": "phone id", "name": "id", "in": "path", "required": true},
                    {"description": "phone", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.TelefonoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Telefono"],
                "summary": "Delete a phone",
                "parameters": [
                    {"type": "integer", "description": "phone id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "envelope with data.status 204", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/usuarios": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Usuario"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Usuario"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "user", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UsuarioRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/usuarios/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Usuario"],
                "summary": "Get a user",
                "parameters": [
                    {"type": "integer", "description": "user id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.UsuarioRef": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1}
            }
        },
        "controllers.TelefonoRequest": {
            "type": "object",
            "properties": {
                "numero": {"type": "string", "example": "+34600123456"},
                "tipo": {"type": "string", "example": "movil"},
                "usuario_id": {"type": "integer", "example": 1},
                "usuario": {"$ref": "#/definitions/controllers.UsuarioRef"}
            }
        },
        "controllers.UsuarioRequest": {
            "type": "object",
            "required": ["nombre"],
            "properties": {
                "nombre": {"type": "string", "example": "Ana"},
                "email": {"type": "string", "example": "ana@example.com"}
            }
        },
        "response.Payload": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "body": {}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "code": {"type": "integer"},
                "data": {"$ref": "#/definitions/response.Payload"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Enter the token with the ` + "`" + `Bearer ` + "`" + ` prefix",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Telefono HTTP Service API",
	Description:      "Phone records owned by users, every response wrapped in a success/message/data envelope",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
