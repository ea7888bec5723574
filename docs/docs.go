// Package docs registers the OpenAPI document served at /swagger.
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
        "/api/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Create an account and start a session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.SignupRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign in with email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/profile": {
            "get": {
                "tags": ["content"],
                "summary": "Current business profile",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "profile_id", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            },
            "post": {
                "tags": ["content"],
                "summary": "Save the business profile",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/generate": {
            "post": {
                "tags": ["content"],
                "summary": "Generate a content calendar",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "401": {"description": "Sign in required for gated lengths or reels", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "403": {"description": "Upgrade required or quota exceeded", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/export": {
            "post": {
                "tags": ["content"],
                "summary": "Render a calendar as markdown, html or yaml",
                "consumes": ["application/json"],
                "parameters": [{"type": "string", "name": "format", "in": "query", "enum": ["markdown", "html", "yaml"]}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/generate-review-response": {
            "post": {
                "tags": ["content"],
                "summary": "Draft a reply to a customer review",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/api/feedback": {
            "post": {
                "tags": ["content"],
                "summary": "Rate a generated post",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/api/content": {
            "get": {
                "tags": ["content"],
                "summary": "Feature flags for the client",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/api/create-checkout-session": {
            "post": {
                "tags": ["billing"],
                "summary": "Start a hosted checkout",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "501": {"description": "Billing not configured", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/stripe-webhook": {
            "post": {
                "tags": ["billing"],
                "summary": "Receive billing provider events",
                "consumes": ["application/json"],
                "parameters": [{"type": "string", "name": "Stripe-Signature", "in": "header"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/cancel-subscription": {
            "post": {
                "tags": ["billing"],
                "summary": "Cancel the current subscription",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/api/account": {
            "get": {
                "tags": ["billing"],
                "summary": "Account and subscription view",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/api/reconcile-subscriptions": {
            "post": {
                "tags": ["admin"],
                "summary": "Sync local subscriptions with the billing provider",
                "parameters": [
                    {"type": "boolean", "name": "wait", "in": "query"},
                    {"type": "string", "name": "X-CSRF-Token", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "Finished pass", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "202": {"description": "Background job started", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "501": {"description": "Billing not configured", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/admin/users": {
            "get": {
                "tags": ["admin"],
                "summary": "List users with paid/free totals",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/health": {
            "get": {
                "tags": ["system"],
                "summary": "Liveness and database reachability",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "handlers.SignupRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "utils.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "error": {
                    "type": "object",
                    "properties": {
                        "type": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
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
	Title:            "Togetherly API",
	Description:      "Social content calendars for small businesses.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
