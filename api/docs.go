// Package api holds the OpenAPI document served at /docs.
//
// It follows the annotations on the handlers in pkg/controllers and
// pkg/router and is registered with swag on import.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "AGPL-3.0",
            "url": "https://www.gnu.org/licenses/agpl-3.0.en.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": ["General"],
                "summary": "API root",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.RootResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": ["application/json"],
                "tags": ["General"],
                "summary": "Get health",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": ["General"],
                "summary": "API version",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.VersionResponse"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": ["v1"],
                "summary": "v1 API",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.V1Response"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["v1"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/accounts": {
            "get": {
                "description": "Returns all accounts in creation order",
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "List accounts",
                "parameters": [
                    {"type": "string", "description": "Filter by name, * matches any text", "name": "name", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.AccountListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "post": {
                "description": "Creates a new account. If an account with the name already exists, it is returned unchanged with status 200.",
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Create account",
                "parameters": [
                    {"description": "Account", "name": "account", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.AccountEditable"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.AccountResponse"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.AccountResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Accounts"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/budgets": {
            "get": {
                "description": "Returns all budgets in creation order",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "List budgets",
                "parameters": [
                    {"type": "string", "description": "Filter by name, * matches any text", "name": "name", "in": "query"},
                    {"type": "string", "description": "Filter by account ID", "name": "account", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.BudgetListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "post": {
                "description": "Creates a new budget for an existing account",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Create budget",
                "parameters": [
                    {"description": "Budget", "name": "budget", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.BudgetEditable"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.BudgetResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Budgets"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/income": {
            "post": {
                "description": "Adds the amount to the balance of the account",
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Record income",
                "parameters": [
                    {"description": "Income", "name": "income", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.IncomeEditable"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.IncomeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Transactions"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/expense": {
            "post": {
                "description": "Subtracts the amount from the account or budget. If the ID names both, the account is used.",
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Record expense",
                "parameters": [
                    {"description": "Expense", "name": "expense", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ExpenseEditable"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ExpenseResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Transactions"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/transfer": {
            "post": {
                "description": "Moves the amount between two accounts or budgets. If an ID names both, the budget is used.",
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Record transfer",
                "parameters": [
                    {"description": "Transfer", "name": "transfer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.TransferEditable"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.TransferResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Transactions"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/transactions": {
            "get": {
                "description": "Returns the transaction log in the order the transactions were recorded",
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"enum": ["income", "expense", "transfer"], "type": "string", "description": "Filter by kind", "name": "kind", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.TransactionListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Transactions"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/events": {
            "get": {
                "description": "Upgrades to a websocket connection that receives every transaction as it is recorded",
                "tags": ["Events"],
                "summary": "Transaction events",
                "responses": {"101": {"description": "Switching Protocols"}}
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Events"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        }
    },
    "definitions": {
        "controllers.AccountEditable": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "balance": {"description": "Initial balance in minor units", "type": "integer", "example": 180000},
                "name": {"description": "Name of the account, unique across all accounts", "type": "string", "example": "Checking"}
            }
        },
        "controllers.AccountListResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "List of accounts", "type": "array", "items": {"$ref": "#/definitions/models.Account"}}
            }
        },
        "controllers.AccountResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "Data for the account", "allOf": [{"$ref": "#/definitions/models.Account"}]}
            }
        },
        "controllers.BudgetEditable": {
            "type": "object",
            "required": ["accountId", "name"],
            "properties": {
                "accountId": {"description": "ID of the account the budget belongs to", "type": "string", "example": "65392deb-5e92-4268-b114-297faad6cdce"},
                "amount": {"description": "Initial amount in minor units", "type": "integer", "example": 30000},
                "name": {"description": "Name of the budget, unique across all budgets", "type": "string", "example": "Groceries"}
            }
        },
        "controllers.BudgetListResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "List of budgets", "type": "array", "items": {"$ref": "#/definitions/models.Budget"}}
            }
        },
        "controllers.BudgetResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "Data for the budget", "allOf": [{"$ref": "#/definitions/models.Budget"}]}
            }
        },
        "controllers.ExpenseEditable": {
            "type": "object",
            "required": ["targetId"],
            "properties": {
                "amount": {"description": "Amount in minor units", "type": "integer", "example": 500},
                "date": {"description": "Date of the expense, defaults to now", "type": "string", "example": "2024-01-31"},
                "targetId": {"description": "ID of the account or budget paying the expense", "type": "string", "example": "0f6ac4ee-8f17-4b57-9d57-1ba2db1e76a3"}
            }
        },
        "controllers.ExpenseResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "The account or budget after the expense, with its kind", "type": "object"}
            }
        },
        "controllers.IncomeEditable": {
            "type": "object",
            "required": ["accountId"],
            "properties": {
                "accountId": {"description": "ID of the account receiving the income", "type": "string", "example": "65392deb-5e92-4268-b114-297faad6cdce"},
                "amount": {"description": "Amount in minor units", "type": "integer", "example": 180000},
                "date": {"description": "Date of the income, defaults to now", "type": "string", "example": "2024-01-31"}
            }
        },
        "controllers.IncomeResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "The account after the income", "allOf": [{"$ref": "#/definitions/models.Account"}]}
            }
        },
        "controllers.TransactionListResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "The audit log", "type": "array", "items": {"type": "object"}}
            }
        },
        "controllers.TransferEditable": {
            "type": "object",
            "required": ["fromId", "toId"],
            "properties": {
                "amount": {"description": "Amount in minor units", "type": "integer", "example": 30000},
                "date": {"description": "Date of the transfer, defaults to now", "type": "string", "example": "2024-01-31"},
                "fromId": {"description": "ID of the account or budget the money is taken from", "type": "string", "example": "65392deb-5e92-4268-b114-297faad6cdce"},
                "toId": {"description": "ID of the account or budget receiving the money", "type": "string", "example": "0f6ac4ee-8f17-4b57-9d57-1ba2db1e76a3"}
            }
        },
        "controllers.TransferResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Both participants after the transfer",
                    "type": "object",
                    "properties": {
                        "from": {"type": "object"},
                        "to": {"type": "object"}
                    }
                }
            }
        },
        "httperror.Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "not found: account with id \"65392deb-5e92-4268-b114-297faad6cdce\""}
            }
        },
        "models.Account": {
            "type": "object",
            "properties": {
                "balance": {"description": "Balance in minor units", "type": "integer", "example": 180000},
                "id": {"description": "UUID for the resource", "type": "string", "example": "65392deb-5e92-4268-b114-297faad6cdce"},
                "name": {"description": "Name of the account, unique across all accounts", "type": "string", "example": "Checking"}
            }
        },
        "models.Budget": {
            "type": "object",
            "properties": {
                "accountId": {"description": "ID of the owning account", "type": "string", "example": "65392deb-5e92-4268-b114-297faad6cdce"},
                "amount": {"description": "Amount in minor units", "type": "integer", "example": 30000},
                "id": {"description": "UUID for the resource", "type": "string", "example": "0f6ac4ee-8f17-4b57-9d57-1ba2db1e76a3"},
                "name": {"description": "Name of the budget", "type": "string", "example": "Groceries"}
            }
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "docs": {"description": "Swagger API documentation", "type": "string", "example": "https://example.com/api/docs/index.html"},
                "healthz": {"description": "Healthz endpoint", "type": "string", "example": "https://example.com/api/healthz"},
                "metrics": {"description": "Endpoint returning Prometheus metrics", "type": "string", "example": "https://example.com/api/metrics"},
                "v1": {"description": "List endpoint for all v1 endpoints", "type": "string", "example": "https://example.com/api/v1"},
                "version": {"description": "Endpoint returning the version of the backend", "type": "string", "example": "https://example.com/api/version"}
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {"$ref": "#/definitions/router.RootLinks"}
            }
        },
        "router.V1Links": {
            "type": "object",
            "properties": {
                "accounts": {"description": "URL of account list endpoint", "type": "string", "example": "https://example.com/api/v1/accounts"},
                "budgets": {"description": "URL of budget list endpoint", "type": "string", "example": "https://example.com/api/v1/budgets"},
                "events": {"description": "URL of the websocket event stream", "type": "string", "example": "https://example.com/api/v1/events"},
                "expense": {"description": "URL of the expense endpoint", "type": "string", "example": "https://example.com/api/v1/expense"},
                "income": {"description": "URL of the income endpoint", "type": "string", "example": "https://example.com/api/v1/income"},
                "transactions": {"description": "URL of transaction list endpoint", "type": "string", "example": "https://example.com/api/v1/transactions"},
                "transfer": {"description": "URL of the transfer endpoint", "type": "string", "example": "https://example.com/api/v1/transfer"}
            }
        },
        "router.V1Response": {
            "type": "object",
            "properties": {
                "links": {"description": "Links for the v1 API", "allOf": [{"$ref": "#/definitions/router.V1Links"}]}
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {"description": "the running version of the ledger", "type": "string", "example": "1.1.0"}
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {"description": "Data object for the version endpoint", "allOf": [{"$ref": "#/definitions/router.VersionObject"}]}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
