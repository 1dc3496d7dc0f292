// Package docs registers the OpenAPI document served at /swagger/doc.json.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Coach login",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.LoginResponse"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/diagnosis/sessions": {
            "post": {
                "tags": ["diagnosis"],
                "summary": "Start a diagnosis session",
                "parameters": [{"in": "body", "name": "body", "schema": {"$ref": "#/definitions/model.StartSessionRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.StartSessionResponse"}}
                }
            }
        },
        "/diagnosis/sessions/{id}": {
            "get": {
                "tags": ["diagnosis"],
                "summary": "Session progress and current question",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SessionView"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/diagnosis/sessions/{id}/answers": {
            "post": {
                "tags": ["diagnosis"],
                "summary": "Submit an answer",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.SubmitAnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SubmitAnswerResponse"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Session already completed"}
                }
            }
        },
        "/diagnosis/sessions/{id}/result": {
            "get": {
                "tags": ["diagnosis"],
                "summary": "Result of a completed session",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.DiagnosisResult"}},
                    "409": {"description": "Not ready"}
                }
            }
        },
        "/diagnosis/types": {
            "get": {
                "tags": ["diagnosis"],
                "summary": "Archetype catalog",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/diagnosis/users/{userId}/results": {
            "get": {
                "tags": ["coach"],
                "summary": "Last completed results of a user",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "userId", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/diagnosis/stats/types": {
            "get": {
                "tags": ["coach"],
                "summary": "Distribution of primary types",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "model.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "model.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "coachId": {"type": "string"}}
        },
        "model.StartSessionRequest": {
            "type": "object",
            "properties": {"userId": {"type": "string"}}
        },
        "model.StartSessionResponse": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "token": {"type": "string"},
                "firstQuestion": {"$ref": "#/definitions/model.Question"},
                "progress": {"$ref": "#/definitions/model.Progress"}
            }
        },
        "model.SubmitAnswerRequest": {
            "type": "object",
            "required": ["questionId", "answer"],
            "properties": {
                "questionId": {"type": "string"},
                "answer": {"type": "string", "enum": ["A", "B", "C", "D"]},
                "responseTime": {"type": "integer", "minimum": 0}
            }
        },
        "model.SubmitAnswerResponse": {
            "type": "object",
            "properties": {
                "nextQuestion": {"$ref": "#/definitions/model.Question"},
                "isCompleted": {"type": "boolean"},
                "progress": {"$ref": "#/definitions/model.Progress"}
            }
        },
        "model.SessionView": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "completed"]},
                "currentQuestion": {"$ref": "#/definitions/model.Question"},
                "progress": {"$ref": "#/definitions/model.Progress"}
            }
        },
        "model.Progress": {
            "type": "object",
            "properties": {
                "currentQuestion": {"type": "integer"},
                "totalQuestions": {"type": "integer"},
                "percentage": {"type": "integer"}
            }
        },
        "model.Question": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "questionType": {"type": "string", "enum": ["core", "followup"]},
                "questionText": {"type": "string"},
                "questionOrder": {"type": "integer"},
                "options": {"type": "array", "items": {"type": "object", "properties": {"id": {"type": "string"}, "text": {"type": "string"}}}}
            }
        },
        "model.DiagnosisResult": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "userId": {"type": "string"},
                "primaryType": {"type": "object"},
                "secondaryType": {"type": "object"},
                "confidence": {"type": "integer", "minimum": 75, "maximum": 98},
                "scores": {"type": "object", "additionalProperties": {"type": "number"}},
                "rawScores": {"type": "object", "additionalProperties": {"type": "number"}},
                "completedAt": {"type": "string", "format": "date-time"},
                "totalQuestions": {"type": "integer"},
                "responseTime": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Coaching Diagnosis API",
	Description:      "Adaptive learning-style diagnosis: sessions, answers and results",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
