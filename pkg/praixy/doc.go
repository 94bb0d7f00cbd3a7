// Package praixy provides an authenticated HTTP client for the Praixy
// reverse proxy.
//
// # Overview
//
// Praixy is a bearer-token-authenticated proxy that fronts a set of vendor
// APIs (Gmail, Slack, a CRM GraphQL API, Google Drive, Docs, Sheets, and
// Calendar). The client in this package owns the transport concerns only:
// URL composition against a configured base origin, attaching the
// Authorization header to every request, and surfacing errors. Response
// payloads are owned by the upstream services and are passed through
// unmodified.
//
// Service-specific path building lives in the subpackages (gmail, slack,
// crm, drive, docs, sheets, calendar); each wraps a *Client.
//
// # Configuration Example
//
//	cfg := praixy.DefaultConfig()
//	cfg.BaseURL = "https://praixy.marshal.internal"
//	cfg.APIKey = os.Getenv("MARSHAL_API_KEY")
//	client, err := praixy.New(cfg)
//
// Or, sourcing the key from the environment directly:
//
//	client, err := praixy.NewFromEnv()
//
// # Proxy Surfaces
//
// Raw surfaces mirror the vendor's native API shape under a service path
// prefix:
//   - GET /api/gmail-raw/v1/users/me/messages
//   - GET /api/drive-raw/v3/files
//   - GET /api/docs-raw/v1/documents/:id
//   - GET /api/sheets-raw/v4/spreadsheets/:id/values/:range
//   - GET /api/calendar-raw/v3/calendars/primary/events
//   - GET /api/slack/conversations.history
//
// Simple surfaces return pre-decoded JSON for easier consumption:
//   - GET  /api/gmail-simple/messages
//   - POST /api/slack-simple/dm-self
//
// The CRM surface is GraphQL:
//   - POST /api/crm/graphql
//   - GET  /api/crm/schema
//
// # Error Handling
//
// Errors fall into distinct, inspectable kinds:
//   - missing or invalid configuration (before any network I/O),
//   - transport failures, wrapped with %w,
//   - *StatusError for non-2xx responses (status code and body preserved),
//   - *DecodeError for malformed JSON when decoding was requested.
//
// No request is retried unless MaxRetries is explicitly configured, and
// even then only server errors and transport failures are retried.
//
// # Security
//
//   - Bearer token authentication on every request
//   - API key sourced from the MARSHAL_API_KEY environment variable
//   - Key never logged or serialized to JSON
//   - Configurable TLS verification for dev/test environments
package praixy
