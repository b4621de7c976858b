package watch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
)

type fakeInfo struct {
	os.FileInfo
	size    int64
	modTime time.Time
}

func (f fakeInfo) Size() int64        { return f.size }
func (f fakeInfo) ModTime() time.Time { return f.modTime }

func TestTestWatcher(t *testing.T) {
	tw := NewTestWatcher()

	tw.Trigger()
	tw.Trigger() // coalesced

	select {
	case <-tw.Changes():
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Did not receive change")
	}
	select {
	case <-tw.Changes():
		t.Error("Expected bursts to be coalesced")
	default:
	}

	go tw.SendError(os.ErrPermission)
	select {
	case err := <-tw.Errors():
		if !errors.Is(err, os.ErrPermission) {
			t.Errorf("Expected os.ErrPermission, got %v", err)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Did not receive sent error")
	}

	if err := tw.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Errorf("Double Close() returned error: %v", err)
	}
	// No panic after Close.
	tw.Trigger()
	tw.SendError(os.ErrClosed)
}

func TestTestWatcherFullErrorBuffer(t *testing.T) {
	tw := NewTestWatcher()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			tw.SendError(os.ErrPermission)
		}
		tw.Trigger()
		if err := tw.Close(); err != nil {
			t.Errorf("Close() returned error: %v", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("SendError blocked with nobody reading errors")
	}

	n := 0
	for range tw.Errors() {
		n++
	}
	if n != cap(tw.errors) {
		t.Errorf("received %d errors, want the %d buffered ones", n, cap(tw.errors))
	}
}

func TestWatcherDetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("a,b\n"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	w, err := New(path, WithInterval(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("a,b\nc,d\n"), 0o644); err != nil {
		t.Fatalf("Failed to rewrite file: %v", err)
	}

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("No change reported after write")
	}
}

func TestWatcherInvalidDirectory(t *testing.T) {
	_, err := New("/nonexistent/dir/data.csv")
	if err == nil {
		t.Error("Expected error for a missing directory, got nil")
	}
}

func TestWatcherCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t0 := time.Unix(1700000000, 0)
	fs := NewMockFileSystem(ctrl)
	gomock.InOrder(
		fs.EXPECT().Stat("data.csv").Return(fakeInfo{size: 4, modTime: t0}, nil),
		fs.EXPECT().Stat("data.csv").Return(fakeInfo{size: 4, modTime: t0}, nil),
		fs.EXPECT().Stat("data.csv").Return(fakeInfo{size: 9, modTime: t0.Add(time.Second)}, nil),
		fs.EXPECT().Stat("data.csv").Return(nil, os.ErrNotExist),
		fs.EXPECT().Stat("data.csv").Return(nil, os.ErrPermission),
	)

	w := &Watcher{
		fs:       fs,
		filePath: "data.csv",
		changes:  make(chan struct{}, 1),
		errors:   make(chan error, 10),
	}
	w.last = w.stat()

	// Unchanged
	w.check()
	if len(w.changes) != 0 {
		t.Fatal("Unchanged file reported a change")
	}

	// Grown
	w.check()
	if len(w.changes) != 1 {
		t.Fatal("Modified file did not report a change")
	}
	<-w.changes

	// Removed
	w.check()
	if len(w.changes) != 0 {
		t.Error("Removed file reported a change")
	}

	// Unreadable
	w.check()
	select {
	case err := <-w.errors:
		if !errors.Is(err, os.ErrPermission) {
			t.Errorf("Expected os.ErrPermission, got %v", err)
		}
	default:
		t.Error("Stat error was not reported")
	}
}
