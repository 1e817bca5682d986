package id3field

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Payload is one serialized field awaiting decode.
type Payload struct {
	// ID is the identity the decoded field will carry.
	ID ID

	// Kind selects how Data is decoded.
	Kind Kind

	// Encoding is the text encoding Data is stored in.
	// Ignored for integer and binary kinds.
	Encoding Encoding

	// Data is the field's serialized bytes.
	Data []byte
}

// ParseMany decodes multiple serialized fields concurrently.
//
// Payloads are parsed in parallel using up to runtime.NumCPU() goroutines;
// results are returned in the same order as the input. Each Field is built
// and owned by a single goroutine, so the engine's single-ownership rule
// holds throughout.
//
// If any payload fails to decode, ParseMany returns the first error and no
// fields.
func ParseMany(ctx context.Context, payloads ...Payload) ([]*Field, error) {
	if len(payloads) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Field, len(payloads))

	for i, p := range payloads {
		i, p := i, p
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			f := New(p.ID, p.Kind)
			if f.IsEncodable() {
				if _, err := f.SetEncoding(p.Encoding); err != nil {
					return fmt.Errorf("payload %d (%s %s): %w", i, p.Kind, p.ID, err)
				}
			}

			if err := f.Parse(NewBytesReader(p.Data)); err != nil {
				return fmt.Errorf("payload %d (%s %s): %w", i, p.Kind, p.ID, err)
			}

			results[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
