package source

import (
	"context"

	"github.com/go-git/go-billy/v5"

	"github.com/matzehuels/designlint/pkg/document"
	"github.com/matzehuels/designlint/pkg/errors"
)

// Loader loads documents from local paths or URLs.
type Loader interface {
	Load(ctx context.Context, target string, refresh bool) (*document.Document, error)
}

// Resolver dispatches targets to the filesystem or the HTTP source.
type Resolver struct {
	Files billy.Filesystem
	HTTP  *HTTP
}

// Load loads target. URLs require an HTTP source.
func (r *Resolver) Load(ctx context.Context, target string, refresh bool) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if errors.IsURL(target) {
		if r.HTTP == nil {
			return nil, errors.New(errors.ErrCodeUnsupported, "remote documents are disabled: %s", Redact(target))
		}
		return r.HTTP.Load(ctx, target, refresh)
	}
	if r.Files == nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "local documents are disabled: %s", target)
	}
	return document.Load(r.Files, target)
}

var _ Loader = (*Resolver)(nil)
