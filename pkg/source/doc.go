// Package source turns lint targets into documents.
//
// A target is either a local file path, read through a go-billy filesystem,
// or an http(s) URL serving a document export. Remote exports are fetched
// with retry and kept in a [cache.Cache] so repeated runs do not refetch
// them.
package source
