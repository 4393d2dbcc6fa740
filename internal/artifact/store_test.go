package artifact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeArtifactFile(t *testing.T, a *Artifact) string {
	t.Helper()
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal artifact: %v", err)
	}
	path := filepath.Join(t.TempDir(), "pipeline.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func TestStoreSnapshotBeforeInstall(t *testing.T) {
	s := NewStore()
	if _, err := s.Snapshot(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if s.Ready() {
		t.Fatalf("empty store should not be ready")
	}
}

func TestStoreReload(t *testing.T) {
	path := writeArtifactFile(t, validArtifact())
	s := NewStore()
	if err := s.Reload(path); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	a, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(a.SelectedFeatures) != 2 {
		t.Fatalf("unexpected artifact: %+v", a)
	}
}

func TestStoreReloadKeepsOldArtifactOnFailure(t *testing.T) {
	path := writeArtifactFile(t, validArtifact())
	s := NewStore()
	if err := s.Reload(path); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if err := s.Reload(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected reload failure")
	}
	if !s.Ready() {
		t.Fatalf("previous artifact should survive a failed reload")
	}
}

func TestLoadRejectsInvalidArtifact(t *testing.T) {
	broken := validArtifact()
	broken.Scaler = nil
	path := writeArtifactFile(t, broken)
	if _, err := Load(path); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
}

func TestFetcherDownloadsWhenMissing(t *testing.T) {
	data, _ := json.Marshal(validArtifact())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "models", "pipeline.json")
	f := &Fetcher{URL: srv.URL}
	if err := f.EnsureLocal(context.Background(), path); err != nil {
		t.Fatalf("EnsureLocal: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("downloaded artifact should load: %v", err)
	}
}

func TestFetcherSkipsExistingFile(t *testing.T) {
	path := writeArtifactFile(t, validArtifact())
	f := &Fetcher{URL: "http://127.0.0.1:1/unreachable"}
	if err := f.EnsureLocal(context.Background(), path); err != nil {
		t.Fatalf("existing file should short-circuit the download: %v", err)
	}
}

func TestFetcherNoURLNoFile(t *testing.T) {
	f := &Fetcher{}
	err := f.EnsureLocal(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatalf("expected error when file and URL are both missing")
	}
}
