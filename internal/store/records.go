package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ReadOr decodes the record at path into a T. A missing or undecodable
// record yields def; only backend failures are returned as errors.
func ReadOr[T any](ctx context.Context, s Store, path string, def T) (T, error) {
	data, err := s.Read(ctx, path)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	var v T
	if err := cbor.Unmarshal(data, &v); err != nil {
		return def, nil
	}
	return v, nil
}

// ReadRequired decodes the record at path. A missing or corrupt record is
// reported as ErrNotFound so callers can cancel the operation.
func ReadRequired[T any](ctx context.Context, s Store, path string) (T, error) {
	var v T
	data, err := s.Read(ctx, path)
	if err != nil {
		return v, err
	}
	if err := cbor.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", path, ErrNotFound)
	}
	return v, nil
}

// WriteRecord encodes v and stores it at path.
func WriteRecord(ctx context.Context, s Store, path string, v any) error {
	data, err := cbor.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return s.Write(ctx, path, data)
}

// DeleteRecord removes path, treating an already missing record as success.
func DeleteRecord(ctx context.Context, s Store, path string) error {
	if err := s.Delete(ctx, path); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}
