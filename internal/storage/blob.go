package storage

import (
	"context"
	"io"
)

// PutOptions carries object visibility and tag metadata. The fs store keeps
// tags in a sidecar file; an S3-style store would map them to ACL + Tagging.
type PutOptions struct {
	Public bool
	Tags   map[string]string
}

type BlobStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) error
	Get(key string) (io.ReadCloser, error)
	PublicURL(key string) string // deterministic base+key, no signing
}
