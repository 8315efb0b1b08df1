package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func registerSwaggerRoutes(r chi.Router) {
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	r.Get("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	r.Get("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Virtual Teller API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Virtual Teller API",
    "version": "1.0.0"
  },
  "paths": {
    "/": {
      "get": {
        "summary": "Welcome message",
        "responses": {
          "200": {"description": "Service greeting"}
        }
      }
    },
    "/accounts": {
      "post": {
        "summary": "Open an account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "holderName"],
                "properties": {
                  "accountNumber": {"type": "string", "maxLength": 34},
                  "holderName": {"type": "string"},
                  "initialBalance": {"type": "string", "example": "1000.00"},
                  "status": {"type": "string", "enum": ["ACTIVE", "BLOCKED", "CLOSED"]}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Account created"},
          "400": {"description": "Validation error, invalid amount or status"},
          "409": {"description": "Account already exists"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/accounts/{number}": {
      "get": {
        "summary": "Get an account",
        "parameters": [{"$ref": "#/components/parameters/AccountNumber"}],
        "responses": {
          "200": {"description": "Account fetched"},
          "404": {"description": "Account not found"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/accounts/{number}/deposits": {
      "post": {
        "summary": "Deposit into an account",
        "parameters": [{"$ref": "#/components/parameters/AccountNumber"}],
        "requestBody": {"$ref": "#/components/requestBodies/Amount"},
        "responses": {
          "200": {"description": "Deposit applied, new balance returned"},
          "400": {"description": "Validation error or non-positive amount"},
          "404": {"description": "Account not found"},
          "409": {"description": "Account is not active"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/accounts/{number}/withdrawals": {
      "post": {
        "summary": "Withdraw from an account",
        "parameters": [{"$ref": "#/components/parameters/AccountNumber"}],
        "requestBody": {"$ref": "#/components/requestBodies/Amount"},
        "responses": {
          "200": {"description": "Withdrawal applied, new balance returned"},
          "400": {"description": "Validation error or non-positive amount"},
          "404": {"description": "Account not found"},
          "409": {"description": "Account is not active"},
          "422": {"description": "Insufficient funds"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/accounts/{number}/movements": {
      "get": {
        "summary": "List account movements, oldest first",
        "parameters": [{"$ref": "#/components/parameters/AccountNumber"}],
        "responses": {
          "200": {"description": "Movements fetched"},
          "404": {"description": "Account not found"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/transfers": {
      "post": {
        "summary": "Transfer between two accounts",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["sourceAccountNumber", "destinationAccountNumber", "amount"],
                "properties": {
                  "sourceAccountNumber": {"type": "string"},
                  "destinationAccountNumber": {"type": "string"},
                  "amount": {"type": "string", "example": "300.00"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Transfer applied, both balances returned"},
          "400": {"description": "Validation error or non-positive amount"},
          "404": {"description": "Source or destination not found"},
          "409": {"description": "An account is not active"},
          "422": {"description": "Insufficient funds"},
          "500": {"description": "Server error"}
        }
      }
    },
    "/metrics": {
      "get": {
        "summary": "Prometheus metrics",
        "responses": {
          "200": {"description": "Text exposition format"}
        }
      }
    }
  },
  "components": {
    "parameters": {
      "AccountNumber": {
        "name": "number",
        "in": "path",
        "required": true,
        "schema": {"type": "string"}
      }
    },
    "requestBodies": {
      "Amount": {
        "required": true,
        "content": {
          "application/json": {
            "schema": {
              "type": "object",
              "required": ["amount"],
              "properties": {
                "amount": {"type": "string", "example": "200.00"}
              }
            }
          }
        }
      }
    }
  }
}`
