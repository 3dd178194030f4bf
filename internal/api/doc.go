// Package api is the HTTP plumbing for the WINTER/SUMMER ToO service.
//
// It carries the endpoint URL table (local test server vs the observatory
// server) and a small client that sends basic-authenticated JSON requests.
// Transport failures are retried with capped exponential backoff; a non-200
// answer is final and surfaces as errors.ErrRequestFailed together with the
// server's own message.
//
// Every endpoint answers with the same envelope:
//
//	{"msg": "...", "body": ...}
//
// which Response mirrors, leaving body as raw JSON for the caller to shape.
package api
