// Package docs registers the API document served at /swagger/doc.json.
// Regenerate the handler annotations into it with `swag init -g cmd/api/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/healthz": {"get": {"tags": ["health"], "summary": "Health Check"}},
        "/api/v1/markets": {
            "get": {"tags": ["markets"], "summary": "List markets"},
            "post": {"tags": ["markets"], "summary": "Create a market", "security": [{"BearerAuth": []}]}
        },
        "/api/v1/markets/{id}": {"get": {"tags": ["markets"], "summary": "Get market details"}},
        "/api/v1/markets/{id}/resolve": {"post": {"tags": ["markets"], "summary": "Resolve a market", "security": [{"BearerAuth": []}]}},
        "/api/v1/markets/{id}/resolve/oracle": {"post": {"tags": ["markets"], "summary": "Resolve a market from its price oracle", "security": [{"BearerAuth": []}]}},
        "/api/v1/markets/{id}/bets": {
            "get": {"tags": ["bets"], "summary": "List a market's bets"},
            "post": {"tags": ["bets"], "summary": "Place a bet", "security": [{"BearerAuth": []}]}
        },
        "/api/v1/markets/{id}/bets/me": {"get": {"tags": ["bets"], "summary": "Get the caller's bet on a market", "security": [{"BearerAuth": []}]}},
        "/api/v1/bets/{id}": {"get": {"tags": ["bets"], "summary": "Get a bet"}},
        "/api/v1/bets/{id}/settle": {"post": {"tags": ["settlement"], "summary": "Claim a winning bet by its ID", "security": [{"BearerAuth": []}]}},
        "/api/v1/markets/{id}/settle": {"post": {"tags": ["settlement"], "summary": "Claim a winning bet", "security": [{"BearerAuth": []}]}},
        "/api/v1/markets/{id}/settle-loss": {"post": {"tags": ["settlement"], "summary": "Apply a lost bet to the caller's streak", "security": [{"BearerAuth": []}]}},
        "/api/v1/markets/{id}/sweep-losses": {"post": {"tags": ["settlement"], "summary": "Settle every outstanding loss on a market", "security": [{"BearerAuth": []}]}},
        "/api/v1/settlements/me": {"get": {"tags": ["settlement"], "summary": "List the caller's settlements", "security": [{"BearerAuth": []}]}},
        "/api/v1/profiles/me": {"get": {"tags": ["profiles"], "summary": "Get the caller's profile", "security": [{"BearerAuth": []}]}},
        "/api/v1/profiles/me/insurance": {"post": {"tags": ["profiles"], "summary": "Buy streak insurance", "security": [{"BearerAuth": []}]}},
        "/api/v1/ledger/balance": {"get": {"tags": ["ledger"], "summary": "Get the caller's balance", "security": [{"BearerAuth": []}]}},
        "/api/v1/ledger/entries": {"get": {"tags": ["ledger"], "summary": "List the caller's ledger entries", "security": [{"BearerAuth": []}]}},
        "/api/v1/ledger/airdrop": {"post": {"tags": ["ledger"], "summary": "Airdrop test funds", "security": [{"BearerAuth": []}]}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Streaks API",
	Description:      "Prediction markets with streak multipliers, pari-mutuel payouts and streak insurance.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
