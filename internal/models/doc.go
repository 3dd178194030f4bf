// Package models defines the request payloads of the ToO service: the
// Target-of-Opportunity observation requests for the WINTER and SUMMER
// instruments, and the image query shapes.
//
// Requests are typed per instrument so a WINTER submission cannot carry
// SUMMER filters and vice versa. Validate() checks field ranges and the
// per-instrument filter set before anything is sent to the server; failures
// come back as errors.ErrInvalidToO.
package models
