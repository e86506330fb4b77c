// Package server exposes the era date codec over HTTP.
//
// Routes:
//
//	GET /v1/format?layout=%G年%m月%d日&date=2019-05-01
//	GET /v1/parse?layout=%e/%m/%d&text=R5/10/30
//	GET /v1/eras
//	GET /healthz
//	GET /metrics
//
// Responses are JSON. Conversion and request errors are reported as 400 with a
// {"code", "message"} body.
package server
