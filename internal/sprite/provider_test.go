package sprite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakeProvider struct {
	fail map[string]bool
}

func (f *fakeProvider) Resolve(ctx context.Context, url string) (Handle, error) {
	if f.fail[url] {
		return Handle{}, errors.New("resolve failed")
	}
	return Handle{Name: url}, nil
}

func TestResolveAll_PerSlotFallback(t *testing.T) {
	p := &fakeProvider{fail: map[string]bool{"b.png": true}}

	handles := ResolveAll(context.Background(), p, []string{"a.png", "b.png", "c.png"})

	if len(handles) != 3 {
		t.Fatalf("expected 3 handles, got %d", len(handles))
	}
	if handles[0].Name != "a.png" || handles[0].Placeholder {
		t.Errorf("slot 0: got %+v", handles[0])
	}
	if !handles[1].Placeholder {
		t.Errorf("slot 1 should be placeholder, got %+v", handles[1])
	}
	if handles[2].Name != "c.png" || handles[2].Placeholder {
		t.Errorf("slot 2: got %+v", handles[2])
	}
}

func TestResolveAll_AllFail(t *testing.T) {
	p := &fakeProvider{fail: map[string]bool{"a.png": true, "b.png": true}}

	handles := ResolveAll(context.Background(), p, []string{"a.png", "b.png"})

	for i, h := range handles {
		if !h.Placeholder {
			t.Errorf("slot %d should be placeholder, got %+v", i, h)
		}
	}
}

func TestResolveAll_EmptyURLs(t *testing.T) {
	handles := ResolveAll(context.Background(), StaticProvider{}, nil)

	if len(handles) != 1 {
		t.Fatalf("expected 1 fallback handle, got %d", len(handles))
	}
	if !handles[0].Placeholder {
		t.Errorf("expected placeholder, got %+v", handles[0])
	}
}

func TestFileProvider(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.png")
	if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	h, err := FileProvider{}.Resolve(context.Background(), path)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if h.Name != path {
		t.Errorf("expected name %s, got %s", path, h.Name)
	}

	if _, err := (FileProvider{}).Resolve(context.Background(), filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStaticProvider_EmptySource(t *testing.T) {
	if _, err := (StaticProvider{}).Resolve(context.Background(), ""); err == nil {
		t.Error("expected error for empty source")
	}
}
