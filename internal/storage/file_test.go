package storage

import (
	"context"
	"errors"
	"os"
	"testing"
)

func TestFileKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}

	if _, err := kv.Get(ctx, "vcard-data"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty dir: err = %v, want ErrNotFound", err)
	}

	if err := kv.Set(ctx, "vcard-data", []byte(`{"name":"A"}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set(ctx, "vcard-data", []byte(`{"name":"B"}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := kv.Get(ctx, "vcard-data")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"name":"B"}` {
		t.Errorf("Get = %s", got)
	}
}

func TestFileKVLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	if err := kv.Set(context.Background(), "a/b", []byte("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir has %d entries, want 1", len(entries))
	}
	if entries[0].Name() != "a%2Fb.json" {
		t.Errorf("file name = %q", entries[0].Name())
	}
}

func TestMemoryKVCopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	v := []byte("abc")
	if err := kv.Set(ctx, "k", v); err != nil {
		t.Fatal(err)
	}
	v[0] = 'z'

	got, _ := kv.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("stored value aliased caller slice: %s", got)
	}
	if kv.Writes() != 1 {
		t.Errorf("writes = %d", kv.Writes())
	}
}
