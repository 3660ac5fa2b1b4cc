// Package docs holds the OpenAPI description served at /swagger/.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/health": {
            "get": {"tags": ["health"], "summary": "Health check", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}}}}
        },
        "/events": {
            "get": {"tags": ["events"], "summary": "List events", "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["events"], "summary": "Create an event",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.EventRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}
        },
        "/events/categories": {
            "get": {"tags": ["events"], "summary": "List event categories", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/events/{id}": {
            "get": {"tags": ["events"], "summary": "Get an event", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Event"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["events"], "summary": "Update an event",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.EventRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["events"], "summary": "Delete an event", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/registrations": {
            "post": {"tags": ["registrations"], "summary": "Register for an event",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateRegistrationRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}
        },
        "/registrations/user/{identifier}": {
            "get": {"tags": ["registrations"], "summary": "List an attendee's registrations", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "identifier", "in": "path", "required": true},
                    {"type": "string", "name": "type", "in": "query"}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/registrations/match/{email}": {
            "get": {"tags": ["registrations"], "summary": "Match registrations by email", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "email", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/registrations/{id}/status": {
            "put": {"tags": ["registrations"], "summary": "Change a registration's status",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateStatusRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/registrations/event/{eventId}": {
            "get": {"tags": ["registrations"], "summary": "List an event's registrations", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "eventId", "in": "path", "required": true},
                    {"type": "string", "name": "status", "in": "query"}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/registrations/analytics": {
            "get": {"tags": ["registrations"], "summary": "Dashboard analytics", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/auth/register": {
            "post": {"tags": ["auth"], "summary": "Sign up", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.RegisterRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Log in", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.LoginRequest"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/auth/verify": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Verify a token", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/auth/profile": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Update the caller's profile",
                "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        },
        "/auth/change-password": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Change the caller's password",
                "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        }
    },
    "definitions": {
        "controllers.HealthResponse": {"type": "object", "properties": {"status": {"type": "string"}}},
        "controllers.EventRequest": {"type": "object", "properties": {
            "title": {"type": "string"}, "description": {"type": "string"}, "date": {"type": "string"},
            "time": {"type": "string"}, "location": {"type": "string"}, "maxAttendees": {"type": "integer"},
            "price": {"type": "number"}, "image": {"type": "string"}, "category": {"type": "string"},
            "organizer": {"type": "string"}, "tags": {"type": "array", "items": {"type": "string"}}}},
        "controllers.CreateRegistrationRequest": {"type": "object", "properties": {
            "eventId": {"type": "string"}, "attendeeName": {"type": "string"}, "attendeeEmail": {"type": "string"},
            "attendeePhone": {"type": "string"}, "ticketType": {"type": "string"}}},
        "controllers.UpdateStatusRequest": {"type": "object", "properties": {
            "status": {"type": "string", "enum": ["confirmed", "pending", "cancelled"]}}},
        "controllers.RegisterRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}, "avatar": {"type": "string"}}},
        "controllers.LoginRequest": {"type": "object", "properties": {
            "email": {"type": "string"}, "password": {"type": "string"}}},
        "domain.Event": {"type": "object", "properties": {
            "id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
            "date": {"type": "string"}, "time": {"type": "string"}, "location": {"type": "string"},
            "maxAttendees": {"type": "integer"}, "currentAttendees": {"type": "integer"}, "price": {"type": "number"},
            "image": {"type": "string"}, "category": {"type": "string"}, "organizer": {"type": "string"},
            "tags": {"type": "array", "items": {"type": "string"}},
            "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "helpers.APIError": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}}},
        "helpers.ErrorResponse": {"type": "object", "properties": {
            "success": {"type": "boolean"}, "message": {"type": "string"}, "error": {"$ref": "#/definitions/helpers.APIError"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and the JWT.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Evently API",
	Description:      "Event browsing, registration with capacity accounting, and admin analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
