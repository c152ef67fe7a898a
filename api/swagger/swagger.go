package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Assignment Management API",
        "description": "Role-based assignment workflow for students, tutors and admins",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Registration, login and logout"},
        {"name": "Users", "description": "User profiles and listings"},
        {"name": "Subjects", "description": "Subject catalogue (admin managed)"},
        {"name": "Assignments", "description": "Submission, assignment and solution workflow"},
        {"name": "Comments", "description": "Assignment discussion"}
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a new user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/UserResponse"}},
                    "400": {"description": "Validation error or duplicate email", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/token": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate and issue an access token",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "username", "in": "formData", "type": "string", "required": true, "description": "Email address"},
                    {"name": "password", "in": "formData", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenResponse"}},
                    "401": {"description": "Incorrect email or password", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Clear the access token cookie",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "tags": ["Users"],
                "summary": "Current user's profile",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users (admin only)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "role", "in": "query", "type": "string"},
                    {"name": "skip", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/UserResponse"}}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get user by id (self or admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/users/tutors/list": {
            "get": {
                "tags": ["Users"],
                "summary": "List all tutors",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/UserResponse"}}}
                }
            }
        },
        "/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List subjects",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "skip", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Subject"}}}
                }
            },
            "post": {
                "tags": ["Subjects"],
                "summary": "Create subject (admin only)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubjectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Subject"}},
                    "400": {"description": "Duplicate name", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/subjects/{id}": {
            "get": {
                "tags": ["Subjects"],
                "summary": "Get subject by id",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Subject"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "put": {
                "tags": ["Subjects"],
                "summary": "Update subject (admin only)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Subject"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "delete": {
                "tags": ["Subjects"],
                "summary": "Delete subject (admin only)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "400": {"description": "Subject is referenced by assignments", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/assignments": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List assignments visible to the caller",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "skip", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/AssignmentResponse"}}}
                }
            },
            "post": {
                "tags": ["Assignments"],
                "summary": "Submit a new assignment (students only)",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "title", "in": "formData", "type": "string", "required": true},
                    {"name": "description", "in": "formData", "type": "string"},
                    {"name": "submission_text", "in": "formData", "type": "string"},
                    {"name": "subject_id", "in": "formData", "type": "integer", "required": true},
                    {"name": "file", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/AssignmentResponse"}},
                    "404": {"description": "Subject not found", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/assignments/{id}": {
            "get": {
                "tags": ["Assignments"],
                "summary": "Get assignment by id (participants only)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AssignmentResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/assignments/{id}/assign": {
            "put": {
                "tags": ["Assignments"],
                "summary": "Assign a tutor (admin only)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AssignmentResponse"}},
                    "404": {"description": "Assignment or tutor not found", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/assignments/{id}/status": {
            "put": {
                "tags": ["Assignments"],
                "summary": "Update status and/or description (assigned tutor or admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateAssignmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AssignmentResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/assignments/{id}/solution": {
            "put": {
                "tags": ["Assignments"],
                "summary": "Upload a solution file (assigned tutor or admin)",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "file", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AssignmentResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/comments": {
            "post": {
                "tags": ["Comments"],
                "summary": "Add a comment (participants only)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCommentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CommentResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/comments/assignment/{assignment_id}": {
            "get": {
                "tags": ["Comments"],
                "summary": "List comments for an assignment (participants only)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "assignment_id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/CommentResponse"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/comments/{id}": {
            "delete": {
                "tags": ["Comments"],
                "summary": "Delete a comment (author or admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "student", "tutor"]}
            },
            "required": ["name", "email", "password", "role"]
        },
        "TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"},
                "user_role": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "Subject": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "SubjectRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"}
            },
            "required": ["name"]
        },
        "AssignmentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "submission_text": {"type": "string"},
                "status": {"type": "string", "enum": ["submitted", "assigned", "in_progress", "completed", "returned"]},
                "file_path": {"type": "string"},
                "solution_file_path": {"type": "string"},
                "returned_at": {"type": "string", "format": "date-time"},
                "created_at": {"type": "string", "format": "date-time"},
                "student": {"$ref": "#/definitions/UserResponse"},
                "tutor": {"$ref": "#/definitions/UserResponse"},
                "subject": {"$ref": "#/definitions/Subject"}
            }
        },
        "AssignRequest": {
            "type": "object",
            "properties": {
                "tutor_id": {"type": "integer"},
                "status": {"type": "string"}
            },
            "required": ["tutor_id"]
        },
        "UpdateAssignmentRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "CreateCommentRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "assignment_id": {"type": "integer"}
            },
            "required": ["text", "assignment_id"]
        },
        "CommentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "text": {"type": "string"},
                "assignment_id": {"type": "integer"},
                "created_at": {"type": "string", "format": "date-time"},
                "user": {"$ref": "#/definitions/UserResponse"}
            }
        },
        "Detail": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
