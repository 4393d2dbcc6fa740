package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Fetcher downloads the model artifact from remote storage when the local
// file is absent. The training pipeline publishes the artifact out of band;
// the service only ever reads it.
type Fetcher struct {
	URL    string
	Client *http.Client
}

// EnsureLocal makes sure an artifact file exists at path, downloading it from
// the configured URL if needed. With no URL configured the local file must
// already exist.
func (f *Fetcher) EnsureLocal(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if f.URL == "" {
		return fmt.Errorf("artifact file %s missing and no download URL configured", path)
	}
	if f.Client == nil {
		f.Client = &http.Client{Timeout: 60 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("download artifact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("download artifact: unexpected status %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	// Write to a temp file first so a partial download never looks like a
	// valid artifact.
	tmp, err := os.CreateTemp(filepath.Dir(path), "artifact-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
