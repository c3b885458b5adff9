// Package docs holds the OpenAPI document served under /api-docs. It is
// built from the swag annotations on the handlers and in cmd/api; rebuild it
// with swag init -g cmd/api/main.go -o internal/api/docs after changing them.
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
        "/ai/analyze-product": {
            "post": {
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
                    "ai"
                ],
                "summary": "Sustainability analysis of a product",
                "parameters": [
                    {
                        "description": "Product to analyse",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.analyzeProductRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/ai/chat": {
            "post": {
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
                    "ai"
                ],
                "summary": "Chat with the sustainability assistant",
                "parameters": [
                    {
                        "description": "Message and recent history",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.chatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/ai/generate-esg-report": {
            "post": {
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
                    "ai"
                ],
                "summary": "Draft an ESG report for a supplier",
                "parameters": [
                    {
                        "description": "Supplier and timeframe",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.esgReportRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/ai/optimize-supply-chain": {
            "post": {
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
                    "ai"
                ],
                "summary": "Supply chain optimisation suggestions",
                "parameters": [
                    {
                        "description": "Supply chain data and constraints",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.optimizeSupplyChainRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/ai/recommendations": {
            "post": {
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
                    "ai"
                ],
                "summary": "Personalised sustainability recommendations",
                "parameters": [
                    {
                        "description": "Optional focus",
                        "name": "body",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/handler.recommendationsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/auth/forgot-password": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Request a password reset",
                "parameters": [
                    {
                        "description": "Account email",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.forgotPasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.loginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.authResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Logout",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/auth/me": {
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
                    "auth"
                ],
                "summary": "Current user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "User registration details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.registerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.authResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/auth/reset-password/{token}": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Reset password",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Reset token from the emailed link",
                        "name": "token",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New password",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.resetPasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.authResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/auth/update-password": {
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
                    "auth"
                ],
                "summary": "Update password",
                "parameters": [
                    {
                        "description": "Current and new password",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updatePasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.authResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/esg": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "esg"
                ],
                "summary": "List ESG reports",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by supplier",
                        "name": "supplierId",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "draft, published or archived",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Reporting year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page number (default 1)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size (default 10, max 100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.listResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            },
            "post": {
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
                    "esg"
                ],
                "summary": "File an ESG report",
                "parameters": [
                    {
                        "description": "Report contents",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createReportRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/esg/supplier/{supplierId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "esg"
                ],
                "summary": "List a supplier's ESG reports",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Supplier id",
                        "name": "supplierId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Page number (default 1)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size (default 10, max 100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.listResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/products": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "List products",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by category",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Match name, brand or description",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "description": "Minimum sustainability rating (0-5)",
                        "name": "minRating",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page number (default 1)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size (default 10, max 100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.listResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            },
            "post": {
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
                    "products"
                ],
                "summary": "Create a product",
                "parameters": [
                    {
                        "description": "Product details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createProductRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/products/barcode/{barcode}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "Look up a product by barcode",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Barcode",
                        "name": "barcode",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/products/qr/{qrCode}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "Look up a product by QR code",
                "parameters": [
                    {
                        "type": "string",
                        "description": "QR code payload",
                        "name": "qrCode",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "Get a product",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Product id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/rewards": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "rewards"
                ],
                "summary": "List active rewards",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Reward type",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Reward rarity",
                        "name": "rarity",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.listResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            },
            "post": {
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
                    "rewards"
                ],
                "summary": "Create a reward",
                "parameters": [
                    {
                        "description": "Reward definition",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createRewardRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/rewards/stats": {
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
                    "rewards"
                ],
                "summary": "Reward standing of the caller",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/suppliers": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "suppliers"
                ],
                "summary": "List suppliers",
                "parameters": [
                    {
                        "type": "string",
                        "description": "low, medium or high",
                        "name": "riskLevel",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Filter by verification",
                        "name": "verified",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Supply chain tier (1-4)",
                        "name": "tier",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Match company name or industry",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page number (default 1)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size (default 10, max 100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.listResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            },
            "post": {
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
                    "suppliers"
                ],
                "summary": "Create a supplier",
                "parameters": [
                    {
                        "description": "Supplier details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createSupplierRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/suppliers/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "suppliers"
                ],
                "summary": "Get a supplier",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Supplier id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/users": {
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
                    "users"
                ],
                "summary": "List users",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by role",
                        "name": "role",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Filter by active flag",
                        "name": "active",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page number (default 1)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size (default 10, max 100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.listResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/users/{id}": {
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
                    "users"
                ],
                "summary": "Get a user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
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
                    "users"
                ],
                "summary": "Update a user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        },
        "/users/{id}/deactivate": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Deactivate a user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.dataResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Availability": {
            "type": "object",
            "properties": {
                "inStock": {
                    "type": "boolean"
                },
                "quantity": {
                    "type": "integer"
                }
            }
        },
        "domain.BoardComposition": {
            "type": "object",
            "properties": {
                "independentMembers": {
                    "type": "integer"
                },
                "totalMembers": {
                    "type": "integer"
                },
                "womenMembers": {
                    "type": "integer"
                }
            }
        },
        "domain.CarbonEmissions": {
            "type": "object",
            "properties": {
                "scope1": {
                    "type": "number"
                },
                "scope2": {
                    "type": "number"
                },
                "scope3": {
                    "type": "number"
                },
                "total": {
                    "type": "number"
                },
                "unit": {
                    "type": "string"
                }
            }
        },
        "domain.Certification": {
            "type": "object",
            "properties": {
                "issuedBy": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "validUntil": {
                    "type": "string"
                }
            }
        },
        "domain.CommunityImpact": {
            "type": "object",
            "properties": {
                "beneficiaries": {
                    "type": "integer"
                },
                "investmentAmount": {
                    "type": "number"
                },
                "programs": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.EnergyConsumption": {
            "type": "object",
            "properties": {
                "renewable": {
                    "type": "number"
                },
                "total": {
                    "type": "number"
                },
                "unit": {
                    "type": "string"
                }
            }
        },
        "domain.EnvironmentalMetrics": {
            "type": "object",
            "properties": {
                "carbonEmissions": {
                    "$ref": "#/definitions/domain.CarbonEmissions"
                },
                "energyConsumption": {
                    "$ref": "#/definitions/domain.EnergyConsumption"
                },
                "wasteManagement": {
                    "$ref": "#/definitions/domain.WasteManagement"
                },
                "waterUsage": {
                    "$ref": "#/definitions/domain.ResourceUsage"
                }
            }
        },
        "domain.EnvironmentalScores": {
            "type": "object",
            "properties": {
                "biodiversityImpact": {
                    "type": "number"
                },
                "carbonEmissions": {
                    "type": "number"
                },
                "renewableEnergyUsage": {
                    "type": "number"
                },
                "wasteManagement": {
                    "type": "number"
                },
                "waterUsage": {
                    "type": "number"
                }
            }
        },
        "domain.Ethics": {
            "type": "object",
            "properties": {
                "anticorruptionTraining": {
                    "type": "boolean"
                },
                "codeOfConduct": {
                    "type": "boolean"
                },
                "whistleblowerPolicy": {
                    "type": "boolean"
                }
            }
        },
        "domain.GovernanceMetrics": {
            "type": "object",
            "properties": {
                "boardComposition": {
                    "$ref": "#/definitions/domain.BoardComposition"
                },
                "ethics": {
                    "$ref": "#/definitions/domain.Ethics"
                },
                "transparency": {
                    "$ref": "#/definitions/domain.Transparency"
                }
            }
        },
        "domain.GovernanceScores": {
            "type": "object",
            "properties": {
                "boardDiversity": {
                    "type": "number"
                },
                "businessEthics": {
                    "type": "number"
                },
                "compliance": {
                    "type": "number"
                },
                "riskManagement": {
                    "type": "number"
                },
                "transparency": {
                    "type": "number"
                }
            }
        },
        "domain.LaborPractices": {
            "type": "object",
            "properties": {
                "childLaborCompliance": {
                    "type": "boolean"
                },
                "fairWageCompliance": {
                    "type": "boolean"
                },
                "workingHoursCompliance": {
                    "type": "boolean"
                }
            }
        },
        "domain.NotificationPreferences": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "boolean"
                },
                "push": {
                    "type": "boolean"
                }
            }
        },
        "domain.Preferences": {
            "type": "object",
            "properties": {
                "notifications": {
                    "$ref": "#/definitions/domain.NotificationPreferences"
                },
                "sustainabilityGoals": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.Price": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "currency": {
                    "type": "string"
                }
            }
        },
        "domain.ProductESGData": {
            "type": "object",
            "properties": {
                "energyConsumption": {
                    "type": "number"
                },
                "ethicalSourcing": {
                    "type": "boolean"
                },
                "fairTrade": {
                    "type": "boolean"
                },
                "renewableEnergyPercentage": {
                    "type": "number"
                },
                "waterUsage": {
                    "type": "number"
                }
            }
        },
        "domain.Profile": {
            "type": "object",
            "properties": {
                "avatar": {
                    "type": "string"
                },
                "bio": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "preferences": {
                    "$ref": "#/definitions/domain.Preferences"
                }
            }
        },
        "domain.ReportPeriod": {
            "type": "object",
            "properties": {
                "endDate": {
                    "type": "string"
                },
                "quarter": {
                    "type": "string"
                },
                "startDate": {
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                }
            }
        },
        "domain.ResourceUsage": {
            "type": "object",
            "properties": {
                "recycled": {
                    "type": "number"
                },
                "total": {
                    "type": "number"
                },
                "unit": {
                    "type": "string"
                }
            }
        },
        "domain.RewardRequirements": {
            "type": "object",
            "properties": {
                "minPoints": {
                    "type": "integer"
                },
                "minSustainabilityScore": {
                    "type": "number"
                },
                "specificActions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "timeframe": {
                    "type": "string"
                }
            }
        },
        "domain.RewardValue": {
            "type": "object",
            "properties": {
                "discountPercentage": {
                    "type": "number"
                },
                "monetaryValue": {
                    "type": "number"
                },
                "points": {
                    "type": "integer"
                }
            }
        },
        "domain.Role": {
            "type": "string",
            "enum": [
                "consumer",
                "supplier",
                "admin"
            ],
            "x-enum-varnames": [
                "RoleConsumer",
                "RoleSupplier",
                "RoleAdmin"
            ]
        },
        "domain.SocialMetrics": {
            "type": "object",
            "properties": {
                "communityImpact": {
                    "$ref": "#/definitions/domain.CommunityImpact"
                },
                "laborPractices": {
                    "$ref": "#/definitions/domain.LaborPractices"
                },
                "workforce": {
                    "$ref": "#/definitions/domain.Workforce"
                }
            }
        },
        "domain.SocialScores": {
            "type": "object",
            "properties": {
                "communityEngagement": {
                    "type": "number"
                },
                "diversityInclusion": {
                    "type": "number"
                },
                "employeeSafety": {
                    "type": "number"
                },
                "humanRights": {
                    "type": "number"
                },
                "laborPractices": {
                    "type": "number"
                }
            }
        },
        "domain.SupplierAddress": {
            "type": "object",
            "properties": {
                "city": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "street": {
                    "type": "string"
                },
                "zipCode": {
                    "type": "string"
                }
            }
        },
        "domain.SupplierESGMetrics": {
            "type": "object",
            "properties": {
                "environmental": {
                    "$ref": "#/definitions/domain.EnvironmentalScores"
                },
                "governance": {
                    "$ref": "#/definitions/domain.GovernanceScores"
                },
                "social": {
                    "$ref": "#/definitions/domain.SocialScores"
                }
            }
        },
        "domain.SupplyChain": {
            "type": "object",
            "properties": {
                "intermediaries": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "manufacturingDate": {
                    "type": "string"
                },
                "originCountry": {
                    "type": "string"
                },
                "supplierId": {
                    "type": "string"
                },
                "transportationMode": {
                    "$ref": "#/definitions/domain.TransportationMode"
                }
            }
        },
        "domain.SustainabilityMetrics": {
            "type": "object",
            "properties": {
                "carbonFootprint": {
                    "type": "number"
                },
                "certifications": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "recyclabilityScore": {
                    "type": "number"
                },
                "sustainabilityRating": {
                    "type": "number"
                }
            }
        },
        "domain.Transparency": {
            "type": "object",
            "properties": {
                "auditFrequency": {
                    "type": "string"
                },
                "publicReporting": {
                    "type": "boolean"
                },
                "stakeholderEngagement": {
                    "type": "boolean"
                }
            }
        },
        "domain.TransportationMode": {
            "type": "string",
            "enum": [
                "air",
                "sea",
                "land",
                "rail"
            ],
            "x-enum-varnames": [
                "TransportAir",
                "TransportSea",
                "TransportLand",
                "TransportRail"
            ]
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "esgMetrics": {
                    "$ref": "#/definitions/domain.UserESGMetrics"
                },
                "firstName": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                },
                "lastName": {
                    "type": "string"
                },
                "profile": {
                    "$ref": "#/definitions/domain.Profile"
                },
                "rewards": {
                    "$ref": "#/definitions/domain.UserRewards"
                },
                "role": {
                    "$ref": "#/definitions/domain.Role"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "domain.UserESGMetrics": {
            "type": "object",
            "properties": {
                "carbonFootprint": {
                    "type": "number"
                },
                "sustainabilityScore": {
                    "type": "number"
                },
                "wasteReduction": {
                    "type": "number"
                }
            }
        },
        "domain.UserRewards": {
            "type": "object",
            "properties": {
                "badges": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "level": {
                    "type": "integer"
                },
                "nfts": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "points": {
                    "type": "integer"
                }
            }
        },
        "domain.WasteManagement": {
            "type": "object",
            "properties": {
                "landfill": {
                    "type": "number"
                },
                "recycled": {
                    "type": "number"
                },
                "totalGenerated": {
                    "type": "number"
                },
                "unit": {
                    "type": "string"
                }
            }
        },
        "domain.Workforce": {
            "type": "object",
            "properties": {
                "diversityRatio": {
                    "type": "number"
                },
                "safetyIncidents": {
                    "type": "integer"
                },
                "totalEmployees": {
                    "type": "integer"
                },
                "turnoverRate": {
                    "type": "number"
                }
            }
        },
        "handler.analyzeProductRequest": {
            "type": "object",
            "required": [
                "productId"
            ],
            "properties": {
                "productId": {
                    "type": "string"
                }
            }
        },
        "handler.authResponse": {
            "type": "object",
            "properties": {
                "expiresIn": {
                    "type": "integer"
                },
                "success": {
                    "type": "boolean"
                },
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/domain.User"
                }
            }
        },
        "handler.chatMessageRequest": {
            "type": "object",
            "required": [
                "content",
                "role"
            ],
            "properties": {
                "content": {
                    "type": "string",
                    "maxLength": 2000
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "user",
                        "assistant"
                    ]
                }
            }
        },
        "handler.chatRequest": {
            "type": "object",
            "required": [
                "message"
            ],
            "properties": {
                "history": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.chatMessageRequest"
                    }
                },
                "message": {
                    "type": "string",
                    "maxLength": 2000
                }
            }
        },
        "handler.contactInfoRequest": {
            "type": "object",
            "required": [
                "email"
            ],
            "properties": {
                "address": {
                    "$ref": "#/definitions/domain.SupplierAddress"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                }
            }
        },
        "handler.createProductRequest": {
            "type": "object",
            "required": [
                "brand",
                "category",
                "description",
                "name"
            ],
            "properties": {
                "availability": {
                    "$ref": "#/definitions/domain.Availability"
                },
                "barcode": {
                    "type": "string",
                    "maxLength": 64
                },
                "brand": {
                    "type": "string",
                    "maxLength": 100
                },
                "category": {
                    "type": "string",
                    "enum": [
                        "food",
                        "clothing",
                        "electronics",
                        "home",
                        "beauty",
                        "automotive",
                        "industrial",
                        "other"
                    ]
                },
                "description": {
                    "type": "string",
                    "maxLength": 2000
                },
                "esgData": {
                    "$ref": "#/definitions/domain.ProductESGData"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "name": {
                    "type": "string",
                    "maxLength": 200
                },
                "price": {
                    "$ref": "#/definitions/domain.Price"
                },
                "qrCode": {
                    "type": "string",
                    "maxLength": 256
                },
                "supplyChain": {
                    "$ref": "#/definitions/domain.SupplyChain"
                },
                "sustainabilityMetrics": {
                    "$ref": "#/definitions/domain.SustainabilityMetrics"
                }
            }
        },
        "handler.createReportRequest": {
            "type": "object",
            "required": [
                "executiveSummary",
                "supplierId"
            ],
            "properties": {
                "certifications": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Certification"
                    }
                },
                "environmentalMetrics": {
                    "$ref": "#/definitions/domain.EnvironmentalMetrics"
                },
                "executiveSummary": {
                    "type": "string",
                    "maxLength": 2000
                },
                "governanceMetrics": {
                    "$ref": "#/definitions/domain.GovernanceMetrics"
                },
                "reportPeriod": {
                    "$ref": "#/definitions/domain.ReportPeriod"
                },
                "socialMetrics": {
                    "$ref": "#/definitions/domain.SocialMetrics"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "draft",
                        "published",
                        "archived"
                    ]
                },
                "supplierId": {
                    "type": "string"
                }
            }
        },
        "handler.createRewardRequest": {
            "type": "object",
            "required": [
                "description",
                "name",
                "type"
            ],
            "properties": {
                "description": {
                    "type": "string",
                    "maxLength": 500
                },
                "imageUrl": {
                    "type": "string"
                },
                "name": {
                    "type": "string",
                    "maxLength": 100
                },
                "rarity": {
                    "type": "string",
                    "enum": [
                        "common",
                        "rare",
                        "epic",
                        "legendary"
                    ]
                },
                "requirements": {
                    "$ref": "#/definitions/domain.RewardRequirements"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "badge",
                        "nft",
                        "points",
                        "discount",
                        "certification"
                    ]
                },
                "value": {
                    "$ref": "#/definitions/domain.RewardValue"
                }
            }
        },
        "handler.createSupplierRequest": {
            "type": "object",
            "required": [
                "companyName",
                "supplyChainTier"
            ],
            "properties": {
                "certifications": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Certification"
                    }
                },
                "companyName": {
                    "type": "string",
                    "maxLength": 200
                },
                "contactInfo": {
                    "$ref": "#/definitions/handler.contactInfoRequest"
                },
                "esgMetrics": {
                    "$ref": "#/definitions/domain.SupplierESGMetrics"
                },
                "industry": {
                    "type": "string",
                    "maxLength": 100
                },
                "isVerified": {
                    "type": "boolean"
                },
                "supplyChainTier": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 4
                }
            }
        },
        "handler.dataResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "success": {
                    "type": "boolean"
                }
            }
        },
        "handler.esgReportRequest": {
            "type": "object",
            "required": [
                "supplierId"
            ],
            "properties": {
                "supplierId": {
                    "type": "string"
                },
                "timeframe": {
                    "type": "string",
                    "enum": [
                        "monthly",
                        "quarterly",
                        "annual"
                    ]
                }
            }
        },
        "handler.forgotPasswordRequest": {
            "type": "object",
            "required": [
                "email"
            ],
            "properties": {
                "email": {
                    "type": "string"
                }
            }
        },
        "handler.listResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "data": {},
                "pagination": {
                    "$ref": "#/definitions/handler.pagination"
                },
                "success": {
                    "type": "boolean"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "handler.optimizeSupplyChainRequest": {
            "type": "object",
            "required": [
                "supplyChain"
            ],
            "properties": {
                "constraints": {},
                "supplyChain": {}
            }
        },
        "handler.pagination": {
            "type": "object",
            "properties": {
                "limit": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "pages": {
                    "type": "integer"
                }
            }
        },
        "handler.preferencesRequest": {
            "type": "object",
            "properties": {
                "notifications": {
                    "type": "object",
                    "properties": {
                        "email": {
                            "type": "boolean"
                        },
                        "push": {
                            "type": "boolean"
                        }
                    }
                },
                "sustainabilityGoals": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "maxItems": 20
                }
            }
        },
        "handler.profileRequest": {
            "type": "object",
            "properties": {
                "avatar": {
                    "type": "string"
                },
                "bio": {
                    "type": "string",
                    "maxLength": 500
                },
                "location": {
                    "type": "string",
                    "maxLength": 100
                },
                "preferences": {
                    "$ref": "#/definitions/handler.preferencesRequest"
                }
            }
        },
        "handler.recommendationsRequest": {
            "type": "object",
            "properties": {
                "budget": {
                    "type": "number",
                    "minimum": 0
                },
                "category": {
                    "type": "string",
                    "maxLength": 50
                },
                "goals": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "maxItems": 20
                }
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": [
                "email",
                "firstName",
                "lastName",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "firstName": {
                    "type": "string",
                    "maxLength": 50
                },
                "lastName": {
                    "type": "string",
                    "maxLength": 50
                },
                "password": {
                    "type": "string",
                    "minLength": 6
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "consumer",
                        "supplier"
                    ]
                }
            }
        },
        "handler.resetPasswordRequest": {
            "type": "object",
            "required": [
                "password"
            ],
            "properties": {
                "password": {
                    "type": "string",
                    "minLength": 6
                }
            }
        },
        "handler.updatePasswordRequest": {
            "type": "object",
            "required": [
                "currentPassword",
                "newPassword"
            ],
            "properties": {
                "currentPassword": {
                    "type": "string"
                },
                "newPassword": {
                    "type": "string",
                    "minLength": 6
                }
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "properties": {
                "firstName": {
                    "type": "string",
                    "maxLength": 50
                },
                "isActive": {
                    "type": "boolean"
                },
                "lastName": {
                    "type": "string",
                    "maxLength": 50
                },
                "profile": {
                    "$ref": "#/definitions/handler.profileRequest"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "consumer",
                        "supplier",
                        "admin"
                    ]
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT.",
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "SustainaLink API",
	Description:      "Sustainability marketplace API: accounts, products, suppliers, ESG reports, rewards and AI assistants.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
