package fstdict

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/minio/blake2b-simd"
)

// Persist stores and retrieves opaque, named blobs. Implementations:
// NewInMemoryStore (in_memory_store.go), and the file- and S3-backed
// stores under persist/file and persist/s3, each its own module so that
// pulling in an FST never drags in aws-sdk-go.
type Persist interface {
	Store(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
}

// SaveFST serializes fst and stores it under a name derived from the
// blake2b-256 hash of its encoded form. If p can already Load a blob
// under that name, Store is not called again. It returns the name
// LoadFST needs to retrieve it again.
func SaveFST(ctx context.Context, p Persist, fst *FST) (string, error) {
	var buf bytes.Buffer
	if err := fst.Write(&buf); err != nil {
		return "", fmt.Errorf("fstdict: save: %w", err)
	}
	encoded := buf.Bytes()

	sum := blake2b.Sum256(encoded)
	name := base64.RawURLEncoding.EncodeToString(sum[:])

	if _, err := p.Load(ctx, name); err == nil {
		return name, nil
	}
	if err := p.Store(ctx, name, encoded); err != nil {
		return "", fmt.Errorf("fstdict: save: persist store: %w", err)
	}
	return name, nil
}

// LoadFST retrieves and decodes the FST previously stored under name.
func LoadFST(ctx context.Context, p Persist, name string) (*FST, error) {
	encoded, err := p.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("fstdict: load: persist load: %w", err)
	}
	fst, err := ReadFST(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("fstdict: load: %w", err)
	}
	return fst, nil
}
