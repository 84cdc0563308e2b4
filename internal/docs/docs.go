// Package docs registers the OpenAPI document served under /docs.
//
// The template mirrors the swag annotations on the handlers. Regenerate with
//
//	swag init -g cmd/api/main.go -o internal/docs --outputTypes go
//
// after changing an annotation; router_test.go fails when a route is missing.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Status check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/contact": {
            "post": {
                "description": "Accepts the form and returns the caller's User-Agent header verbatim (null when absent). An optional ads cookie is accepted and ignored.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Submit the contact form",
                "parameters": [
                    {"type": "string", "description": "First name, 1-20 characters", "name": "first_name", "in": "formData", "required": true},
                    {"type": "string", "description": "Last name, 1-20 characters", "name": "last_name", "in": "formData", "required": true},
                    {"type": "string", "description": "Email address", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "Message, at least 20 characters", "name": "message", "in": "formData", "required": true},
                    {"type": "string", "description": "Client user agent", "name": "User-Agent", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        },
        "/post-image": {
            "post": {
                "description": "Reads the whole file and reports its name, declared content type and size in KB.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["files"],
                "summary": "Upload an image",
                "parameters": [
                    {"type": "file", "description": "File to upload", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UploadSummary"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/user/detail": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Echo user details from the query string",
                "parameters": [
                    {"type": "string", "description": "Age, 1-50 characters", "name": "age", "in": "query", "required": true},
                    {"type": "string", "description": "Free-form description", "name": "description", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.UserDetail"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/user/detail/{user_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Check that a user id exists",
                "parameters": [
                    {"type": "integer", "description": "User id, greater than 0", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/user/login": {
            "post": {
                "description": "Echoes the username. The password is accepted and discarded.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Log in",
                "parameters": [
                    {"type": "string", "description": "Username, at most 20 characters", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LoginResult"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/user/new": {
            "post": {
                "description": "Validates the user and echoes it back without the password.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "User to create", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UserInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.PublicUser"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/user/update/{user_id}": {
            "put": {
                "description": "Validates the user (and optional location) and acknowledges with 204.",
                "consumes": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "integer", "description": "User id, greater than 0", "name": "user_id", "in": "path", "required": true},
                    {"description": "User fields with optional location", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateUserRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.FieldViolation": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "location": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "domain.LoginResult": {
            "type": "object",
            "properties": {
                "username": {"type": "string"}
            }
        },
        "domain.PublicUser": {
            "type": "object",
            "properties": {
                "credit_card_number": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "is_active": {"type": "boolean"},
                "last_name": {"type": "string"},
                "photo_url": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "user", "manager"]}
            }
        },
        "domain.UploadSummary": {
            "type": "object",
            "properties": {
                "Filename": {"type": "string"},
                "Format": {"type": "string"},
                "Size(kb)": {"type": "number"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "array", "items": {"$ref": "#/definitions/domain.FieldViolation"}},
                "error": {"type": "string"}
            }
        },
        "handler.UserInput": {
            "type": "object",
            "required": ["email", "first_name", "last_name", "password"],
            "properties": {
                "credit_card_number": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string", "maxLength": 50, "minLength": 1},
                "is_active": {"type": "boolean"},
                "last_name": {"type": "string", "maxLength": 50, "minLength": 1},
                "password": {"type": "string", "minLength": 8},
                "photo_url": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "user", "manager"]}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.locationRequest": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "country": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}},
                "status": {"type": "string"}
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "required": ["email", "first_name", "last_name", "password"],
            "properties": {
                "credit_card_number": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string", "maxLength": 50, "minLength": 1},
                "is_active": {"type": "boolean"},
                "last_name": {"type": "string", "maxLength": 50, "minLength": 1},
                "location": {"$ref": "#/definitions/handler.locationRequest"},
                "password": {"type": "string", "minLength": 8},
                "photo_url": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "user", "manager"]}
            }
        },
        "ports.UserDetail": {
            "type": "object",
            "properties": {
                "age": {"type": "string"},
                "description": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "User API",
	Description:      "Request/response validation demo: users, login, contact form and image upload.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
