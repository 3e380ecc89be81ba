// Package docs serves the swagger document of the api.
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
        "/das/account/{account}": {
            "get": {
                "description": "Account info merged with its records, grouped by address and profile",
                "produces": ["application/json"],
                "tags": ["das"],
                "summary": "Get account view",
                "parameters": [
                    {"type": "string", "example": "imac.bit", "description": "account", "name": "account", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"data": {"$ref": "#/definitions/das.AccountView"}}}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/das/account/{account}/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["das"],
                "summary": "Get account info",
                "parameters": [
                    {"type": "string", "example": "imac.bit", "description": "account", "name": "account", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"data": {"$ref": "#/definitions/das.Account"}}}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/das/account-id/{accountId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["das"],
                "summary": "Get account info by account id",
                "parameters": [
                    {"type": "string", "example": "0x5728088435fb8788472a9ca601fbc0b9cbea8be3", "description": "account id", "name": "accountId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"data": {"$ref": "#/definitions/das.Account"}}}},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/das/records/{account}": {
            "get": {
                "description": "Every record of the account, or those matching key",
                "produces": ["application/json"],
                "tags": ["das"],
                "summary": "List account records",
                "parameters": [
                    {"type": "string", "example": "imac.bit", "description": "account", "name": "account", "in": "path", "required": true},
                    {"type": "string", "example": "address.eth", "description": "record key", "name": "key", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/das.AccountRecord"}}}}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/das/records/{account}/{key}": {
            "get": {
                "description": "Value of the first record matching key",
                "produces": ["application/json"],
                "tags": ["das"],
                "summary": "Get a record value",
                "parameters": [
                    {"type": "string", "example": "imac.bit", "description": "account", "name": "account", "in": "path", "required": true},
                    {"type": "string", "example": "address.eth", "description": "record key", "name": "key", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"data": {"type": "string"}}}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/das/records/{account}/batch": {
            "post": {
                "description": "Keys without a record are left out",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["das"],
                "summary": "Get several record values",
                "parameters": [
                    {"type": "string", "example": "imac.bit", "description": "account", "name": "account", "in": "path", "required": true},
                    {"description": "params", "name": "params", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.batchRecordsParams"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"data": {"type": "object", "additionalProperties": {"type": "string"}}}}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/das/addrs/{account}/{chain}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["das"],
                "summary": "List chain addresses of an account",
                "parameters": [
                    {"type": "string", "example": "imac.bit", "description": "account", "name": "account", "in": "path", "required": true},
                    {"type": "string", "example": "eth", "description": "chain", "name": "chain", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/das.AccountRecord"}}}}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/das/owner/{address}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["das"],
                "summary": "List accounts of an owner",
                "parameters": [
                    {"type": "string", "example": "0x1d643fac9a463c9d544506006a6348c234da485f", "description": "owner key", "name": "address", "in": "path", "required": true},
                    {"type": "string", "example": "60", "description": "coin type, 60 by default", "name": "coinType", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/das.OwnedAccount"}}}}},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/das/reverse": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["das"],
                "summary": "Get the reverse record of a key",
                "parameters": [
                    {"description": "params", "name": "params", "in": "body", "required": true, "schema": {"$ref": "#/definitions/das.KeyDescriptor"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"data": {"type": "string"}}}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/das/avatar/{account}": {
            "get": {
                "description": "Avatar resolver answer, passed through",
                "produces": ["application/json"],
                "tags": ["das"],
                "summary": "Get the avatar of an account",
                "parameters": [
                    {"type": "string", "example": "imac.bit", "description": "account", "name": "account", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"data": {"type": "object"}}}},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/das/style/{account}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["das"],
                "summary": "Convert an account between sub account styles",
                "parameters": [
                    {"type": "string", "example": "imac#sub.bit", "description": "account", "name": "account", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"data": {"$ref": "#/definitions/http.styleResult"}}}}
                }
            }
        }
    },
    "definitions": {
        "das.Account": {
            "type": "object",
            "properties": {
                "account": {"type": "string"},
                "account_alias": {"type": "string"},
                "account_id_hex": {"type": "string"},
                "next_account_id_hex": {"type": "string"},
                "create_at_unix": {"type": "integer"},
                "expired_at_unix": {"type": "integer"},
                "status": {"type": "integer"},
                "das_lock_arg_hex": {"type": "string"},
                "owner_algorithm_id": {"type": "integer"},
                "owner_key": {"type": "string"},
                "manager_algorithm_id": {"type": "integer"},
                "manager_key": {"type": "string"},
                "avatar": {"type": "string"}
            }
        },
        "das.AccountRecord": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "label": {"type": "string"},
                "value": {"type": "string"},
                "ttl": {"type": "string"}
            }
        },
        "das.AccountView": {
            "type": "object",
            "properties": {
                "account": {"type": "string"},
                "account_id_hex": {"type": "string"},
                "owner_key": {"type": "string"},
                "manager_key": {"type": "string"},
                "avatar": {"type": "string"},
                "records": {"type": "array", "items": {"$ref": "#/definitions/das.AccountRecord"}},
                "profiles": {"type": "array", "items": {"$ref": "#/definitions/das.AccountRecord"}},
                "profile": {"type": "object", "additionalProperties": {"$ref": "#/definitions/das.AccountRecord"}},
                "address": {"type": "object", "additionalProperties": {"$ref": "#/definitions/das.AccountRecord"}}
            }
        },
        "das.KeyDescriptor": {
            "type": "object",
            "required": ["type", "key_info"],
            "properties": {
                "type": {"type": "string", "example": "blockchain"},
                "key_info": {
                    "type": "object",
                    "required": ["key"],
                    "properties": {
                        "coin_type": {"type": "string", "example": "60"},
                        "chain_id": {"type": "string", "example": "1"},
                        "key": {"type": "string", "example": "0x1d643fac9a463c9d544506006a6348c234da485f"}
                    }
                }
            }
        },
        "das.OwnedAccount": {
            "type": "object",
            "properties": {
                "account": {"type": "string"},
                "display_name": {"type": "string"}
            }
        },
        "http.batchRecordsParams": {
            "type": "object",
            "required": ["keys"],
            "properties": {
                "keys": {"type": "array", "items": {"type": "string"}, "example": ["address.eth", "profile.twitter"]}
            }
        },
        "http.styleResult": {
            "type": "object",
            "properties": {
                "account": {"type": "string"},
                "supported": {"type": "boolean"},
                "dotted": {"type": "string"},
                "hashed": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "dasgo API",
	Description:      "Resolution of .bit accounts through the das indexer.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
