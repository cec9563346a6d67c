package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yaklabco/fixups/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("returns content and info", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.md")
		if err := os.WriteFile(path, []byte("# Report\n"), 0640); err != nil {
			t.Fatalf("setup: %v", err)
		}

		content, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(content) != "# Report\n" {
			t.Errorf("content = %q", content)
		}
		if info.Path != path || info.Size != int64(len(content)) {
			t.Errorf("unexpected info: %+v", info)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.md")
		if err := os.WriteFile(path, []byte{'o', 'k', 0xff, 0xfe}, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, _, err := fsutil.ReadFile(context.Background(), path)
		if !errors.Is(err, fsutil.ErrInvalidEncoding) {
			t.Errorf("error = %v, want ErrInvalidEncoding", err)
		}
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()

		if _, err := fsutil.CheckModified(context.Background(), nil); !errors.Is(err, fsutil.ErrNilFileInfo) {
			t.Errorf("error = %v, want ErrNilFileInfo", err)
		}
	})

	t.Run("unchanged", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.md")
		if err := os.WriteFile(path, []byte("same"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		modified, err := fsutil.CheckModified(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if modified {
			t.Error("expected unmodified")
		}
	})

	t.Run("content changed", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.md")
		if err := os.WriteFile(path, []byte("before"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if err := os.WriteFile(path, []byte("after!"), 0644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		later := info.ModTime.Add(time.Second)
		if err := os.Chtimes(path, later, later); err != nil {
			t.Fatalf("chtimes: %v", err)
		}

		modified, err := fsutil.CheckModified(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if !modified {
			t.Error("expected modified")
		}
	})

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.md")
		if err := os.WriteFile(path, []byte("gone"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if err := os.Remove(path); err != nil {
			t.Fatalf("remove: %v", err)
		}

		modified, err := fsutil.CheckModified(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if !modified {
			t.Error("expected deleted file to count as modified")
		}
	})
}
