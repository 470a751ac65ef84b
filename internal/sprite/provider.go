package sprite

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// PlaceholderName identifies the degraded visual used when a sprite
// source cannot be resolved.
const PlaceholderName = "placeholder"

// Handle is an opaque reference to a resolved visual resource. The
// simulation core shares handles between bodies and never mutates them.
type Handle struct {
	Name        string
	Placeholder bool
}

// Placeholder returns the fallback handle substituted for failed slots.
func Placeholder() Handle {
	return Handle{Name: PlaceholderName, Placeholder: true}
}

// Provider resolves a sprite source into a handle. Resolution may be
// slow or fail; callers decide how failures degrade.
type Provider interface {
	Resolve(ctx context.Context, url string) (Handle, error)
}

// FileProvider resolves sprite sources as paths on the local filesystem.
type FileProvider struct{}

func (FileProvider) Resolve(ctx context.Context, url string) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return Handle{}, err
	}
	if url == "" {
		return Handle{}, fmt.Errorf("sprite: empty source")
	}
	if _, err := os.Stat(url); err != nil {
		return Handle{}, fmt.Errorf("sprite: resolve %s: %w", url, err)
	}
	return Handle{Name: url}, nil
}

// StaticProvider resolves every source to a handle carrying the source
// name. Useful when the renderer does its own asset loading and the
// core only needs stable identities.
type StaticProvider struct{}

func (StaticProvider) Resolve(ctx context.Context, url string) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return Handle{}, err
	}
	if url == "" {
		return Handle{}, fmt.Errorf("sprite: empty source")
	}
	return Handle{Name: url}, nil
}

// ResolveAll resolves every URL concurrently and waits for all of them.
// Each slot that fails gets the placeholder handle; a failure never
// aborts the batch, so initialization can proceed with degraded
// visuals. The returned slice is positionally aligned with urls and
// always has at least one handle.
func ResolveAll(ctx context.Context, p Provider, urls []string) []Handle {
	if len(urls) == 0 {
		return []Handle{Placeholder()}
	}

	handles := make([]Handle, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			h, err := p.Resolve(ctx, url)
			if err != nil {
				h = Placeholder()
			}
			handles[i] = h
		}(i, url)
	}

	wg.Wait()
	return handles
}
