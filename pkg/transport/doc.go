// Package transport performs the HTTP round-trips of the SDK.
//
// The REST client posts JSON bodies and puts binary archives with custom
// headers, returning the raw response body. Any non-2xx outcome is
// surfaced as a *protocol.RemoteRequestError carrying the status code and
// the raw body; the transport never retries. Retry policy belongs
// exclusively to the job-status poller.
package transport
