// Package schedule builds a provisional observing schedule locally from
// validated ToO requests, mirroring the expansion the server performs at
// submission time. Useful for checking what a set of requests turns into
// before triggering a real submission.
package schedule
