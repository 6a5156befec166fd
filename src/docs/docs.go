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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/applications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "List applications",
                "parameters": [
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Filter by status", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Application"}}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "Submit admission form",
                "parameters": [
                    {"description": "Admission form", "name": "form", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.IntakeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.IntakeResult"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/applications/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "Get application",
                "parameters": [{"type": "string", "description": "Application ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Application"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/applications/{id}/status": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "Change application status",
                "parameters": [
                    {"type": "string", "description": "Application ID", "name": "id", "in": "path", "required": true},
                    {"description": "New status", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.StatusChangeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Application"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/applications/{id}/fee-slip": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "Issue fee slip",
                "parameters": [
                    {"type": "string", "description": "Application ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fee slip", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.FeeSlipRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.FeeSlip"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/applications/{id}/fee-slip/qrcode": {
            "get": {
                "produces": ["image/png"],
                "tags": ["applications"],
                "summary": "Fee slip payment QR code",
                "parameters": [
                    {"type": "string", "description": "Application ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 256, "description": "Image size in pixels", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/applications/{id}/verify-documents": {
            "post": {
                "produces": ["application/json"],
                "tags": ["agents"],
                "summary": "Verify documents",
                "parameters": [{"type": "string", "description": "Application ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AgentResponse"}}}
            }
        },
        "/applications/{id}/shortlist": {
            "post": {
                "produces": ["application/json"],
                "tags": ["agents"],
                "summary": "Shortlist application",
                "parameters": [{"type": "string", "description": "Application ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AgentResponse"}}}
            }
        },
        "/students/{id}/communicate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["agents"],
                "summary": "Message a student",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "id", "in": "path", "required": true},
                    {"description": "Admission stage", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CommunicateRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AgentResponse"}}}
            }
        },
        "/students/{id}/loan-request": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["agents"],
                "summary": "Submit loan request",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "id", "in": "path", "required": true},
                    {"description": "Loan request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LoanInput"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AgentResponse"}}}
            }
        },
        "/admission/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admission"],
                "summary": "Admission process status",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AdmissionProcessStatus"}}}
            }
        },
        "/admission/screen": {
            "post": {
                "produces": ["application/json"],
                "tags": ["agents"],
                "summary": "Screen applications",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AgentResponse"}}}
            }
        },
        "/chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["agents"],
                "summary": "Chat with the admission office",
                "parameters": [{"description": "Question", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ChatRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AgentResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/loans/evaluate": {
            "post": {
                "produces": ["application/json"],
                "tags": ["agents"],
                "summary": "Evaluate loan requests",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AgentResponse"}}}
            }
        },
        "/budget/loan": {
            "get": {
                "produces": ["application/json"],
                "tags": ["budget"],
                "summary": "Get loan budget",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UniversityBudget"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["budget"],
                "summary": "Set loan budget",
                "parameters": [{"description": "Budget", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.BudgetRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UniversityBudget"}}}
            }
        },
        "/agents": {
            "get": {
                "produces": ["application/json"],
                "tags": ["agents"],
                "summary": "List agents",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Agent"}}}}
            }
        },
        "/agents/tasks": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["agents"],
                "summary": "Enqueue background agent run",
                "parameters": [{"description": "Task", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.TaskRequest"}}],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/models.TaskResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Readiness check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "type": "object",
            "properties": {"status": {"type": "integer"}, "message": {"type": "string"}}
        },
        "models.AgentResponse": {
            "type": "object",
            "properties": {"kind": {"type": "string", "example": "ok"}, "result": {"type": "string"}, "detail": {"type": "string"}}
        },
        "models.Document": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "type": {"type": "string"}, "uploaded_date": {"type": "string"},
                "is_valid": {"type": "boolean"}, "remarks": {"type": "string"}
            }
        },
        "models.Application": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "student_id": {"type": "string"}, "student_name": {"type": "string"},
                "submission_date": {"type": "string"}, "status": {"type": "string"},
                "documents": {"type": "array", "items": {"$ref": "#/definitions/models.Document"}},
                "eligible": {"type": "boolean"}, "shortlisted_by": {"type": "string"}, "updated_on": {"type": "string"},
                "marks_10": {"type": "number"}, "marks_12": {"type": "number"}, "aadhar_no": {"type": "string"},
                "income_category": {"type": "string"}, "extracurriculars": {"type": "string"}, "notes": {"type": "string"}
            }
        },
        "models.DocumentInput": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "type": {"type": "string"}}
        },
        "models.LoanInput": {
            "type": "object",
            "properties": {"amount_requested": {"type": "number"}, "purpose": {"type": "string"}}
        },
        "models.IntakeRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "email": {"type": "string"}, "phone": {"type": "string"},
                "marks_10": {"type": "number"}, "marks_12": {"type": "number"}, "aadhar_no": {"type": "string"},
                "income_category": {"type": "string"}, "extracurriculars": {"type": "string"}, "notes": {"type": "string"},
                "documents": {"type": "array", "items": {"$ref": "#/definitions/models.DocumentInput"}},
                "loan": {"$ref": "#/definitions/models.LoanInput"}
            }
        },
        "models.IntakeResult": {
            "type": "object",
            "properties": {"student_id": {"type": "string"}, "application_id": {"type": "string"}, "loan_request_id": {"type": "string"}}
        },
        "models.StatusChangeRequest": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "models.FeeSlipRequest": {
            "type": "object",
            "properties": {"amount": {"type": "number"}, "due_date": {"type": "string"}}
        },
        "models.FeeSlip": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "student_id": {"type": "string"}, "application_id": {"type": "string"},
                "amount": {"type": "number"}, "generated_date": {"type": "string"}, "due_date": {"type": "string"},
                "is_paid": {"type": "boolean"}
            }
        },
        "models.CommunicateRequest": {
            "type": "object",
            "properties": {"content": {"type": "string"}}
        },
        "models.ChatRequest": {
            "type": "object",
            "properties": {"content": {"type": "string"}, "application_id": {"type": "string"}}
        },
        "models.AdmissionProcessStatus": {
            "type": "object",
            "properties": {
                "total_applications": {"type": "integer"}, "verified_documents": {"type": "integer"},
                "shortlisted_candidates": {"type": "integer"}, "admitted_students": {"type": "integer"},
                "fee_slips_sent": {"type": "integer"}, "loans_processed": {"type": "integer"},
                "last_updated": {"type": "string"}
            }
        },
        "models.BudgetRequest": {
            "type": "object",
            "properties": {"total_budget": {"type": "number"}, "remaining_budget": {"type": "number"}}
        },
        "models.UniversityBudget": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "type": {"type": "string"}, "total_budget": {"type": "number"},
                "remaining_budget": {"type": "number"}, "updated_on": {"type": "string"}
            }
        },
        "models.Agent": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "role": {"type": "string"},
                "active": {"type": "boolean"}, "assigned_tasks": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.TaskRequest": {
            "type": "object",
            "properties": {"type": {"type": "string"}, "application_id": {"type": "string"}}
        },
        "models.TaskResponse": {
            "type": "object",
            "properties": {"task_id": {"type": "string"}, "type": {"type": "string"}, "queue": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Admission Agents API",
	Description:      "Admission workflow backend: intake, document checks, shortlisting, loans and student messaging.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
