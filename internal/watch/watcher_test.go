package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, files []string) <-chan struct{} {
	t.Helper()
	changed := make(chan struct{}, 16)
	w, err := New(Config{
		Files:    files,
		Debounce: 20 * time.Millisecond,
		OnChange: func(context.Context) { changed <- struct{}{} },
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("watcher did not stop")
		}
	})
	return changed
}

func TestWatcher_CallsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stage_test.go")
	require.NoError(t, os.WriteFile(path, []byte("package x\n"), 0o644))

	changed := startWatcher(t, []string{path})

	require.NoError(t, os.WriteFile(path, []byte("package x\n\n// edited\n"), 0o644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("OnChange not called after write")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stage_test.go")
	require.NoError(t, os.WriteFile(path, []byte("package x\n"), 0o644))

	changed := startWatcher(t, []string{path})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other_test.go"), []byte("package x\n"), 0o644))

	select {
	case <-changed:
		t.Fatal("OnChange called for an unwatched file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stage_test.go")
	require.NoError(t, os.WriteFile(path, []byte("package x\n"), 0o644))

	changed := make(chan struct{}, 16)
	w, err := New(Config{
		Files:    []string{path},
		Debounce: 300 * time.Millisecond,
		OnChange: func(context.Context) { changed <- struct{}{} },
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("package x\n"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("OnChange not called")
	}
	select {
	case <-changed:
		t.Fatal("burst produced more than one callback")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{OnChange: func(context.Context) {}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files")

	_, err = New(Config{Files: []string{"x_test.go"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "callback")

	_, err = New(Config{
		Files:    []string{filepath.Join(t.TempDir(), "missing-dir", "x_test.go")},
		OnChange: func(context.Context) {},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch dir")
}
