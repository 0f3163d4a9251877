// Package httputil provides HTTP helpers for the remote document source.
//
// # Retry
//
// [Retry] re-runs an operation with exponential backoff, but only for
// errors wrapped in [RetryableError]. [CheckResponse] maps responses onto
// that contract: 5xx and 429 are retryable and honor Retry-After, 404 is a
// NOT_FOUND error, and anything else outside 2xx fails immediately.
//
//	err := httputil.Retry(ctx, httputil.DefaultPolicy, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    return httputil.CheckResponse(resp)
//	})
package httputil
