// Package docs holds the swagger description served under /docs.
// Regenerate with: swag init -g internal/server/server.go -o docs
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
        "/api/bert_predict": {
            "post": {
                "description": "Classify a news article as Real or Fake with the fine-tuned BERT model",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "classify"
                ],
                "summary": "Classify news text",
                "parameters": [
                    {
                        "description": "Article text",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/server.PredictRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/classifier.Result"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/server.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/server.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Service health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/server.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "classifier.Result": {
            "type": "object",
            "properties": {
                "confidence": {
                    "type": "number",
                    "example": 0.9731
                },
                "prediction": {
                    "type": "string",
                    "example": "Real"
                }
            }
        },
        "server.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "No text provided"
                }
            }
        },
        "server.HealthResponse": {
            "type": "object",
            "properties": {
                "backend": {
                    "type": "string",
                    "example": "hugot/go-cpu"
                },
                "service": {
                    "type": "string",
                    "example": "newsguard"
                },
                "status": {
                    "type": "string",
                    "example": "OK"
                }
            }
        },
        "server.PredictRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string",
                    "example": "Scientists confirm water boils at 100 degrees Celsius at sea level."
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
	Title:            "newsguard API",
	Description:      "Fake-news classification backed by a fine-tuned BERT model",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
