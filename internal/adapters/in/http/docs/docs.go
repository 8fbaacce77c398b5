// Package docs registers the Swagger 2.0 document served under /swagger.
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
        "/quotes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Quote zone, fee and ETA for a destination",
                "parameters": [
                    {
                        "description": "Destination",
                        "name": "location",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/servers.Location"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/servers.Quote"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/servers.Error"}}
                }
            }
        },
        "/deliveries": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["deliveries"],
                "summary": "Submit a delivery request inside the service area",
                "parameters": [
                    {
                        "description": "Destination",
                        "name": "location",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/servers.Location"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/servers.DeliveryCreated"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/servers.Error"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/servers.Error"}}
                }
            }
        },
        "/deliveries/pending": {
            "get": {
                "produces": ["application/json"],
                "tags": ["deliveries"],
                "summary": "List pending delivery requests, oldest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/servers.PendingDelivery"}}}
                }
            }
        },
        "/deliveries/{requestId}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["deliveries"],
                "summary": "Cancel a pending delivery request",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "requestId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/servers.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/servers.Error"}}
                }
            }
        },
        "/dispatch-runs": {
            "post": {
                "produces": ["application/json"],
                "tags": ["dispatch"],
                "summary": "Plan a dispatch run over every pending request",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/servers.DispatchRun"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/servers.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/servers.Error"}}
                }
            }
        },
        "/dispatch-runs/{runId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dispatch"],
                "summary": "Fetch a stored dispatch run",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "runId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/servers.DispatchRun"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/servers.Error"}}
                }
            }
        }
    },
    "definitions": {
        "servers.Location": {
            "type": "object",
            "required": ["latitude", "longitude"],
            "properties": {
                "latitude": {"type": "number", "minimum": -90, "maximum": 90},
                "longitude": {"type": "number", "minimum": -180, "maximum": 180}
            }
        },
        "servers.ZoneDecision": {
            "type": "object",
            "properties": {
                "distanceKm": {"type": "number"},
                "isServiceable": {"type": "boolean"},
                "reason": {"type": "string"}
            }
        },
        "servers.FeeQuote": {
            "type": "object",
            "properties": {
                "baseFee": {"type": "integer"},
                "distanceFee": {"type": "integer"},
                "totalFee": {"type": "integer"}
            }
        },
        "servers.EtaEstimate": {
            "type": "object",
            "properties": {
                "estimatedSeconds": {"type": "number"},
                "source": {"type": "string", "enum": ["live", "fallback"]}
            }
        },
        "servers.Quote": {
            "type": "object",
            "properties": {
                "eta": {"$ref": "#/definitions/servers.EtaEstimate"},
                "fee": {"$ref": "#/definitions/servers.FeeQuote"},
                "zone": {"$ref": "#/definitions/servers.ZoneDecision"}
            }
        },
        "servers.DeliveryCreated": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"}
            }
        },
        "servers.PendingDelivery": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "location": {"$ref": "#/definitions/servers.Location"},
                "submittedAt": {"type": "string", "format": "date-time"}
            }
        },
        "servers.DispatchStop": {
            "type": "object",
            "properties": {
                "distanceKm": {"type": "number"},
                "location": {"$ref": "#/definitions/servers.Location"},
                "requestId": {"type": "string", "format": "uuid"},
                "sequence": {"type": "integer"}
            }
        },
        "servers.DispatchRun": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string", "format": "date-time"},
                "id": {"type": "string", "format": "uuid"},
                "stops": {"type": "array", "items": {"$ref": "#/definitions/servers.DispatchStop"}}
            }
        },
        "servers.Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Delivery zone and dispatch API",
	Description:      "Qualifies delivery destinations, quotes fee and arrival time, and plans dispatch runs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
