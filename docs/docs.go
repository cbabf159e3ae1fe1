// Package docs holds the OpenAPI document served at /swagger/. It is maintained
// by hand alongside the @-annotations on the HTTP handlers.
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
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.HealthSuccessResponse"}},
                    "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/domain.HealthReport"}}
                }
            }
        },
        "/guide": {
            "get": {
                "produces": ["application/json"],
                "tags": ["guide"],
                "summary": "Usage guide with rules and sample payloads",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.GuideSuccessResponse"}}
                }
            }
        },
        "/employers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employers"],
                "summary": "List employers",
                "parameters": [
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListEmployersSuccessResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employers"],
                "summary": "Create an employer",
                "parameters": [
                    {"description": "Employer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.EmployerSuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "Email already in use", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/employers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["employers"],
                "summary": "Get an employer",
                "parameters": [{"type": "string", "description": "Employer ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EmployerSuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employers"],
                "summary": "Update an employer",
                "parameters": [
                    {"type": "string", "description": "Employer ID", "name": "id", "in": "path", "required": true},
                    {"description": "Employer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ContactRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EmployerSuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "Email already in use", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "tags": ["employers"],
                "summary": "Delete an employer without interviews",
                "parameters": [{"type": "string", "description": "Employer ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "Employer has interviews", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/candidates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "List candidates",
                "parameters": [
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListCandidatesSuccessResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Create a candidate",
                "parameters": [
                    {"description": "Candidate", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.CandidateSuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "Email already in use", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/candidates/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Get a candidate",
                "parameters": [{"type": "string", "description": "Candidate ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.CandidateSuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Update a candidate",
                "parameters": [
                    {"type": "string", "description": "Candidate ID", "name": "id", "in": "path", "required": true},
                    {"description": "Candidate", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ContactRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.CandidateSuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "tags": ["candidates"],
                "summary": "Delete a candidate without interviews",
                "parameters": [{"type": "string", "description": "Candidate ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "409": {"description": "Candidate has interviews", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/interviews": {
            "get": {
                "produces": ["application/json"],
                "tags": ["interviews"],
                "summary": "List interviews",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.InterviewListSuccessResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interviews"],
                "summary": "Schedule an interview",
                "parameters": [
                    {"description": "Interview", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.InterviewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.InterviewSuccessResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/interviews/simple": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interviews"],
                "summary": "Schedule an interview from separate date and time fields",
                "parameters": [
                    {"description": "Interview", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.SimpleInterviewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.InterviewSuccessResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/interviews/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["interviews"],
                "summary": "Get an interview",
                "parameters": [{"type": "string", "description": "Interview ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.InterviewSuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interviews"],
                "summary": "Update an interview",
                "parameters": [
                    {"type": "string", "description": "Interview ID", "name": "id", "in": "path", "required": true},
                    {"description": "Interview", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.InterviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.InterviewSuccessResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "tags": ["interviews"],
                "summary": "Delete an interview",
                "parameters": [{"type": "string", "description": "Interview ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/interviews/edit/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["interviews"],
                "summary": "Get an interview as an editable request body",
                "parameters": [{"type": "string", "description": "Interview ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EditInterviewSuccessResponse"}}
                }
            }
        },
        "/interviews/employer/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["interviews"],
                "summary": "List interviews of an employer",
                "parameters": [{"type": "string", "description": "Employer ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.InterviewListSuccessResponse"}}}
            }
        },
        "/interviews/candidate/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["interviews"],
                "summary": "List interviews of a candidate",
                "parameters": [{"type": "string", "description": "Candidate ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.InterviewListSuccessResponse"}}}
            }
        },
        "/interviews/status/{status}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["interviews"],
                "summary": "List interviews by status",
                "parameters": [{"type": "string", "description": "scheduled, canceled, completed or 0, 1, 2", "name": "status", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.InterviewListSuccessResponse"}}}
            }
        },
        "/interviews/type/{type}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["interviews"],
                "summary": "List interviews by type",
                "parameters": [{"type": "string", "description": "online, in-person, phone or 0, 1, 2", "name": "type", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.InterviewListSuccessResponse"}}}
            }
        },
        "/interviews/agenda/{date}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["interviews"],
                "summary": "Interviews of one UTC day",
                "parameters": [{"type": "string", "description": "Date as YYYY-MM-DD", "name": "date", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.InterviewListSuccessResponse"}}}
            }
        },
        "/interviews/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["interviews"],
                "summary": "Aggregated interview statistics",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.DashboardSuccessResponse"}}}
            }
        }
    },
    "definitions": {
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "kind": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "helpers.PaginationMeta": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "domain.Employer": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "domain.Candidate": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "domain.Interview": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "employer_id": {"type": "string"},
                "candidate_id": {"type": "string"},
                "starts_at": {"type": "string", "format": "date-time"},
                "duration_minutes": {"type": "integer"},
                "type": {"type": "string", "enum": ["online", "in-person", "phone"]},
                "status": {"type": "string", "enum": ["scheduled", "canceled", "completed"]},
                "meeting_link": {"type": "string"},
                "location": {"type": "string"},
                "notes": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "domain.Dashboard": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "by_status": {"type": "array", "items": {"$ref": "#/definitions/domain.StatusCount"}},
                "by_type": {"type": "array", "items": {"$ref": "#/definitions/domain.TypeStats"}},
                "upcoming": {"type": "array", "items": {"$ref": "#/definitions/domain.UpcomingInterview"}}
            }
        },
        "domain.StatusCount": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "domain.TypeStats": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "count": {"type": "integer"},
                "average_duration_minutes": {"type": "number"}
            }
        },
        "domain.UpcomingInterview": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "starts_at": {"type": "string", "format": "date-time"},
                "type": {"type": "string"},
                "duration_minutes": {"type": "integer"}
            }
        },
        "domain.HealthReport": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "connected": {"type": "boolean"},
                "employers": {"type": "integer"},
                "candidates": {"type": "integer"},
                "interviews": {"type": "integer"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "controllers.ContactRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 200},
                "email": {"type": "string", "maxLength": 200},
                "phone": {"type": "string"}
            }
        },
        "controllers.InterviewRequest": {
            "type": "object",
            "required": ["employer_id", "candidate_id", "starts_at", "type"],
            "properties": {
                "employer_id": {"type": "string"},
                "candidate_id": {"type": "string"},
                "starts_at": {"type": "string", "format": "date-time"},
                "duration_minutes": {"type": "integer", "minimum": 15, "maximum": 480},
                "type": {"type": "string"},
                "status": {"type": "string"},
                "meeting_link": {"type": "string"},
                "location": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "controllers.SimpleInterviewRequest": {
            "type": "object",
            "required": ["employer_id", "candidate_id", "date", "type"],
            "properties": {
                "employer_id": {"type": "string"},
                "candidate_id": {"type": "string"},
                "date": {"type": "string", "example": "2030-03-04"},
                "time": {"type": "string", "example": "14:30"},
                "duration_minutes": {"type": "integer"},
                "type": {"type": "string"},
                "meeting_link": {"type": "string"},
                "location": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "controllers.Guide": {
            "type": "object",
            "properties": {
                "rules": {"type": "array", "items": {"type": "string"}},
                "examples": {"type": "array", "items": {"$ref": "#/definitions/controllers.InterviewRequest"}}
            }
        },
        "controllers.GuideSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/controllers.Guide"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.HealthSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.HealthReport"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.EmployerSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.Employer"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.CandidateSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.Candidate"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.ListEmployersSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Employer"}},
                        "pagination": {"$ref": "#/definitions/helpers.PaginationMeta"}
                    }
                },
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListCandidatesSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Candidate"}},
                        "pagination": {"$ref": "#/definitions/helpers.PaginationMeta"}
                    }
                },
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.InterviewSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.Interview"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.InterviewListSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.Interview"}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.EditInterviewSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/controllers.InterviewRequest"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.DashboardSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.Dashboard"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Interview Scheduler API",
	Description:      "Schedules interviews between employers and candidates, enforcing business hours, duration limits and candidate availability.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
