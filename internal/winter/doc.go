// Package winter is the session layer of the client: one Client per process,
// wrapping the fidelius credential keeper and the HTTP plumbing.
//
// The Client resolves its basic-auth pair from the keeper once and caches it
// for the life of the process. Program-scoped calls (ToO submission, queue
// queries, image queries, downloads) look up the stored program record and
// pass its API key along as query parameters, the way the server expects.
//
// Submission is instrument-checked: SubmitTooWinter rejects SUMMER requests
// and vice versa, before anything leaves the machine.
package winter
