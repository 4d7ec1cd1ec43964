// Package docs is generated by swaggo/swag from the handler annotations. Regenerate with
// swag init after changing them.
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
        "/api/calendar/periods": {
            "get": {
                "description": "The optional date query parameter (YYYY-MM-DD) picks the current period, today by default",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Calendar"
                ],
                "summary": "List the pay periods of the fiscal year",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Date to locate",
                        "name": "date",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/calendar.CalendarDTO"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/entry": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Entry"
                ],
                "summary": "List all entries sorted by date",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/entry.EntryDTO"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Entry"
                ],
                "summary": "Record an overtime entry",
                "parameters": [
                    {
                        "description": "Entry",
                        "name": "entry",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/entry.EntryDTO"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/entry.EntryDTO"
                        }
                    },
                    "204": {
                        "description": "Nothing to store"
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/entry/draft": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Entry"
                ],
                "summary": "Blank entry with the default date",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/entry.EntryDTO"
                        }
                    }
                }
            }
        },
        "/api/entry/{entryId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Entry"
                ],
                "summary": "Get an entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entryId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/entry.EntryDTO"
                        }
                    },
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Entry"
                ],
                "summary": "Replace an entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entryId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Entry",
                        "name": "entry",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/entry.EntryDTO"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/entry.EntryDTO"
                        }
                    },
                    "204": {
                        "description": "Nothing to store"
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Entry"
                ],
                "summary": "Delete an entry",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Entry ID",
                        "name": "entryId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Entry not found",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/settings": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Settings"
                ],
                "summary": "Current pay settings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/settings.SettingsDTO"
                        }
                    }
                }
            }
        },
        "/api/settings/options": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Settings"
                ],
                "summary": "Selectable ranks, bands, tax rates and allowances",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/settings.OptionsDTO"
                        }
                    }
                }
            }
        },
        "/api/settings/rank": {
            "put": {
                "description": "Keeps the requested or current band when the rank offers it, otherwise takes the rank's first band",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Settings"
                ],
                "summary": "Select a rank",
                "parameters": [
                    {
                        "description": "Rank",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/settings.RankRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/settings.SettingsDTO"
                        }
                    },
                    "400": {
                        "description": "Unknown rank",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/settings/service": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Settings"
                ],
                "summary": "Select a service band under the current rank",
                "parameters": [
                    {
                        "description": "Service band",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/settings.ServiceBandRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/settings.SettingsDTO"
                        }
                    },
                    "400": {
                        "description": "No rank selected",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/settings/tax": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Settings"
                ],
                "summary": "Select the flat tax rate",
                "parameters": [
                    {
                        "description": "Tax rate",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/settings.TaxRateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/settings.SettingsDTO"
                        }
                    },
                    "400": {
                        "description": "Unsupported tax rate",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/stats/breakdown": {
            "get": {
                "description": "Answers with CSV when the client accepts text/csv",
                "produces": [
                    "application/json",
                    "text/csv"
                ],
                "tags": [
                    "Stats"
                ],
                "summary": "Per-period breakdown of hours, allowances and pay",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/stats.PeriodBreakdownDTO"
                            }
                        }
                    }
                }
            }
        },
        "/api/stats/dashboard": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Stats"
                ],
                "summary": "Fiscal-year totals and the periods around today",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/stats.DashboardDTO"
                        }
                    }
                }
            }
        },
        "/api/stats/graph": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Stats"
                ],
                "summary": "Overtime pay per period, allowances excluded",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/stats.GraphDTO"
                        }
                    }
                }
            }
        },
        "/api/stats/live": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Stats"
                ],
                "summary": "Dashboard kept up to date by change notifications",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/stats.LiveDashboardDTO"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "rest.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "entry.EntryDTO": {
            "type": "object",
            "properties": {
                "allowance": {
                    "type": "string",
                    "example": "PA1"
                },
                "comments": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "example": "2026-02-09"
                },
                "hours133": {
                    "type": "string",
                    "example": "4"
                },
                "hours150": {
                    "type": "string",
                    "example": "4"
                },
                "hours200": {
                    "type": "string",
                    "example": "4"
                },
                "id": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "settings.SettingsDTO": {
            "type": "object",
            "properties": {
                "effectiveTaxRate": {
                    "type": "integer"
                },
                "rank": {
                    "type": "string"
                },
                "rate133": {
                    "type": "string",
                    "example": "131.784"
                },
                "rate150": {
                    "type": "string",
                    "example": "131.784"
                },
                "rate200": {
                    "type": "string",
                    "example": "131.784"
                },
                "service": {
                    "type": "string"
                },
                "taxRate": {
                    "type": "integer"
                }
            }
        },
        "settings.RankRequest": {
            "type": "object",
            "properties": {
                "rank": {
                    "type": "string"
                },
                "service": {
                    "type": "string"
                }
            }
        },
        "settings.ServiceBandRequest": {
            "type": "object",
            "properties": {
                "service": {
                    "type": "string"
                }
            }
        },
        "settings.TaxRateRequest": {
            "type": "object",
            "properties": {
                "taxRate": {
                    "type": "integer",
                    "example": 40
                }
            }
        },
        "settings.RankOptionDTO": {
            "type": "object",
            "properties": {
                "rank": {
                    "type": "string"
                },
                "services": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "settings.OptionsDTO": {
            "type": "object",
            "properties": {
                "allowances": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "ranks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/settings.RankOptionDTO"
                    }
                },
                "taxRates": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "calendar.PeriodDTO": {
            "type": "object",
            "properties": {
                "end": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "short": {
                    "type": "string"
                },
                "start": {
                    "type": "string"
                }
            }
        },
        "calendar.CalendarDTO": {
            "type": "object",
            "properties": {
                "current": {
                    "type": "integer"
                },
                "end": {
                    "type": "string"
                },
                "periods": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/calendar.PeriodDTO"
                    }
                },
                "start": {
                    "type": "string"
                }
            }
        },
        "stats.YearTotalsDTO": {
            "type": "object",
            "properties": {
                "grossAllowance": {
                    "type": "string",
                    "example": "131.784"
                },
                "grossOvertime": {
                    "type": "string",
                    "example": "131.784"
                },
                "totalGross": {
                    "type": "string",
                    "example": "131.784"
                },
                "totalHours": {
                    "type": "string",
                    "example": "131.784"
                },
                "totalNet": {
                    "type": "string",
                    "example": "131.784"
                }
            }
        },
        "stats.PeriodStatsDTO": {
            "type": "object",
            "properties": {
                "gross": {
                    "type": "string",
                    "example": "131.784"
                },
                "net": {
                    "type": "string",
                    "example": "131.784"
                },
                "period": {
                    "$ref": "#/definitions/calendar.PeriodDTO"
                }
            }
        },
        "stats.DashboardDTO": {
            "type": "object",
            "properties": {
                "current": {
                    "$ref": "#/definitions/stats.PeriodStatsDTO"
                },
                "date": {
                    "type": "string"
                },
                "next": {
                    "$ref": "#/definitions/stats.PeriodStatsDTO"
                },
                "previous": {
                    "$ref": "#/definitions/stats.PeriodStatsDTO"
                },
                "taxRate": {
                    "type": "integer"
                },
                "totals": {
                    "$ref": "#/definitions/stats.YearTotalsDTO"
                }
            }
        },
        "stats.LiveDashboardDTO": {
            "type": "object",
            "properties": {
                "computedAt": {
                    "type": "string"
                },
                "current": {
                    "$ref": "#/definitions/stats.PeriodStatsDTO"
                },
                "date": {
                    "type": "string"
                },
                "next": {
                    "$ref": "#/definitions/stats.PeriodStatsDTO"
                },
                "previous": {
                    "$ref": "#/definitions/stats.PeriodStatsDTO"
                },
                "revision": {
                    "type": "integer"
                },
                "taxRate": {
                    "type": "integer"
                },
                "totals": {
                    "$ref": "#/definitions/stats.YearTotalsDTO"
                }
            }
        },
        "stats.HoursDTO": {
            "type": "object",
            "properties": {
                "tier133": {
                    "type": "string",
                    "example": "131.784"
                },
                "tier150": {
                    "type": "string",
                    "example": "131.784"
                },
                "tier200": {
                    "type": "string",
                    "example": "131.784"
                }
            }
        },
        "stats.PeriodBreakdownDTO": {
            "type": "object",
            "properties": {
                "allowanceCounts": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "allowanceGross": {
                    "type": "string",
                    "example": "131.784"
                },
                "allowanceNet": {
                    "type": "string",
                    "example": "131.784"
                },
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/entry.EntryDTO"
                    }
                },
                "hours": {
                    "$ref": "#/definitions/stats.HoursDTO"
                },
                "overtimeGross": {
                    "type": "string",
                    "example": "131.784"
                },
                "overtimeNet": {
                    "type": "string",
                    "example": "131.784"
                },
                "period": {
                    "$ref": "#/definitions/calendar.PeriodDTO"
                },
                "totalGross": {
                    "type": "string",
                    "example": "131.784"
                },
                "totalNet": {
                    "type": "string",
                    "example": "131.784"
                }
            }
        },
        "stats.GraphPointDTO": {
            "type": "object",
            "properties": {
                "grossOvertime": {
                    "type": "string",
                    "example": "131.784"
                },
                "netOvertime": {
                    "type": "string",
                    "example": "131.784"
                },
                "period": {
                    "$ref": "#/definitions/calendar.PeriodDTO"
                }
            }
        },
        "stats.GraphDTO": {
            "type": "object",
            "properties": {
                "max": {
                    "type": "string",
                    "example": "131.784"
                },
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.GraphPointDTO"
                    }
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
	Title:            "otpay API",
	Description:      "Overtime entries, pay settings and fiscal-year pay statistics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
