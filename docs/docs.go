// Package docs registers the swagger spec served at /swagger/index.html.
// Code generated by swaggo/swag. Regenerate with `swag init -g cmd/main.go`
// after changing annotations.
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
        "/auth/logout": {
            "post": {
                "description": "Revokes the caller's session at the identity provider. Succeeds without a token too; there is simply no session to revoke.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Log the caller out",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LogoutResponse"
                        }
                    },
                    "500": {
                        "description": "Identity provider error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/profile": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Profile"
                ],
                "summary": "Get the caller's profile and attempt history",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProfileDetailResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid access token",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Profile"
                ],
                "summary": "Update the caller's display name",
                "parameters": [
                    {
                        "description": "New display name",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ProfileResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid access token",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/questions": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Generates an IELTS writing question for the given test/task category and stores it.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Questions"
                ],
                "summary": "Generate a new writing question",
                "parameters": [
                    {
                        "description": "Test and task category",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.GenerateQuestionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.GenerateQuestionResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid access token",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Generation or storage error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/results/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the submission, its question, and the score. Owner-only: other users' attempts read as not found.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Submissions"
                ],
                "summary": "Fetch the result of a previous attempt",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Submission ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ResultResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid submission id",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid access token",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Result not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/submissions": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Persists the attempt, scores it against the four IELTS criteria, and returns the band scores with feedback.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Submissions"
                ],
                "summary": "Submit a writing attempt for scoring",
                "parameters": [
                    {
                        "description": "Attempt content and metadata",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SubmitAnswerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SubmitAnswerResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid access token",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Question not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Scoring or storage error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "dto.GenerateQuestionRequest": {
            "type": "object",
            "required": [
                "task_type",
                "test_type"
            ],
            "properties": {
                "task_type": {
                    "type": "string",
                    "enum": [
                        "task1",
                        "task2"
                    ]
                },
                "test_type": {
                    "type": "string",
                    "enum": [
                        "academic",
                        "general"
                    ]
                }
            }
        },
        "dto.GenerateQuestionResponse": {
            "type": "object",
            "properties": {
                "question": {
                    "$ref": "#/definitions/dto.QuestionResponse"
                }
            }
        },
        "dto.LogoutResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                }
            }
        },
        "dto.ProfileDetailResponse": {
            "type": "object",
            "properties": {
                "history": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.SubmissionSummary"
                    }
                },
                "profile": {
                    "$ref": "#/definitions/dto.ProfileResponse"
                }
            }
        },
        "dto.ProfileResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "display_name": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                }
            }
        },
        "dto.QuestionResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "instructions": {
                    "type": "string"
                },
                "prompt": {
                    "type": "string"
                },
                "task_type": {
                    "type": "string"
                },
                "test_type": {
                    "type": "string"
                },
                "time_limit": {
                    "type": "integer"
                },
                "word_count": {
                    "type": "integer"
                }
            }
        },
        "dto.ResultResponse": {
            "type": "object",
            "properties": {
                "question": {
                    "$ref": "#/definitions/dto.QuestionResponse"
                },
                "score": {
                    "$ref": "#/definitions/dto.ScoreResponse"
                },
                "submission": {
                    "$ref": "#/definitions/dto.SubmissionResponse"
                }
            }
        },
        "dto.ScoreResponse": {
            "type": "object",
            "properties": {
                "coherence_cohesion": {
                    "type": "number"
                },
                "created_at": {
                    "type": "string"
                },
                "feedback": {
                    "type": "string"
                },
                "grammatical_range": {
                    "type": "number"
                },
                "id": {
                    "type": "string"
                },
                "lexical_resource": {
                    "type": "number"
                },
                "overall_band": {
                    "type": "number"
                },
                "submission_id": {
                    "type": "string"
                },
                "task_achievement": {
                    "type": "number"
                }
            }
        },
        "dto.SubmissionResponse": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "submitted_at": {
                    "type": "string"
                },
                "time_taken": {
                    "type": "integer"
                },
                "word_count": {
                    "type": "integer"
                }
            }
        },
        "dto.SubmissionSummary": {
            "type": "object",
            "properties": {
                "overall_band": {
                    "type": "number"
                },
                "submission_id": {
                    "type": "string"
                },
                "submitted_at": {
                    "type": "string"
                },
                "task_type": {
                    "type": "string"
                },
                "test_type": {
                    "type": "string"
                }
            }
        },
        "dto.SubmitAnswerRequest": {
            "type": "object",
            "required": [
                "content",
                "question_id",
                "time_taken",
                "word_count"
            ],
            "properties": {
                "content": {
                    "type": "string",
                    "minLength": 1
                },
                "question_id": {
                    "type": "string"
                },
                "time_taken": {
                    "description": "seconds",
                    "type": "integer"
                },
                "word_count": {
                    "type": "integer"
                }
            }
        },
        "dto.SubmitAnswerResponse": {
            "type": "object",
            "properties": {
                "score": {
                    "$ref": "#/definitions/dto.ScoreResponse"
                },
                "submission_id": {
                    "type": "string"
                }
            }
        },
        "dto.UpdateProfileRequest": {
            "type": "object",
            "required": [
                "display_name"
            ],
            "properties": {
                "display_name": {
                    "type": "string",
                    "maxLength": 100,
                    "minLength": 1
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "IELTS Writing Practice API",
	Description:      "API for IELTS writing practice with AI-generated questions and rubric scoring.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
