package cli

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/tablo/internal/grid/records"
	"github.com/young1lin/tablo/internal/watch"
	"github.com/young1lin/tablo/tui"
)

// MockProgramSender is a mock ProgramSender for testing
type MockProgramSender struct {
	mu       sync.Mutex
	messages []tea.Msg
}

func (m *MockProgramSender) Send(msg tea.Msg) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *MockProgramSender) GetMessages() []tea.Msg {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]tea.Msg(nil), m.messages...)
}

func waitForMessages(t *testing.T, m *MockProgramSender, n int) []tea.Msg {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if msgs := m.GetMessages(); len(msgs) >= n {
			return msgs
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Expected at least %d messages, got %d", n, len(m.GetMessages()))
	return nil
}

func TestRunWatchLoop(t *testing.T) {
	mockSender := &MockProgramSender{}
	testWatcher := watch.NewTestWatcher()
	loadErr := errors.New("bad csv")

	calls := 0
	load := func() (records.Table, error) {
		calls++
		if calls == 2 {
			return nil, loadErr
		}
		return records.FromRows([][]string{{"v"}}), nil
	}

	done := make(chan struct{})
	go func() {
		runWatchLoop(context.Background(), mockSender, testWatcher, load)
		close(done)
	}()

	msgs := waitForMessages(t, mockSender, 1)
	if _, ok := msgs[0].(tui.WatcherStartedMsg); !ok {
		t.Fatalf("first message = %T, want WatcherStartedMsg", msgs[0])
	}

	testWatcher.Trigger()
	msgs = waitForMessages(t, mockSender, 2)
	if loaded, ok := msgs[1].(tui.DataLoadedMsg); !ok || loaded.Data.Rows() != 1 {
		t.Errorf("second message = %#v, want DataLoadedMsg with one row", msgs[1])
	}

	testWatcher.Trigger()
	msgs = waitForMessages(t, mockSender, 3)
	if e, ok := msgs[2].(tui.ErrorMsg); !ok || !errors.Is(e.Err, loadErr) {
		t.Errorf("third message = %#v, want ErrorMsg for the failed load", msgs[2])
	}

	watchErr := errors.New("watch failed")
	testWatcher.SendError(watchErr)
	msgs = waitForMessages(t, mockSender, 4)
	if e, ok := msgs[3].(tui.ErrorMsg); !ok || !errors.Is(e.Err, watchErr) {
		t.Errorf("fourth message = %#v, want ErrorMsg from the watcher", msgs[3])
	}

	testWatcher.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runWatchLoop did not return after the watcher closed")
	}
}

func TestRunWatchLoopStopsOnCancel(t *testing.T) {
	testWatcher := watch.NewTestWatcher()
	defer testWatcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runWatchLoop(ctx, &MockProgramSender{}, testWatcher, func() (records.Table, error) {
			return records.FromRows(nil), nil
		})
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runWatchLoop did not return after cancel")
	}
}

func TestViewCommand(t *testing.T) {
	deps, _ := testDeps(t, "")
	path := filepath.Join(t.TempDir(), "data.csv")
	writeFile(t, path, "a,b\n")

	var runs int
	var created []string
	deps.ProgramRunner = func(p *tea.Program) error {
		runs++
		return nil
	}
	deps.WatcherCreator = func(p string) (watch.Notifier, error) {
		created = append(created, p)
		return watch.NewTestWatcher(), nil
	}

	if _, err := execute(deps, "view", "--watch", path); err != nil {
		t.Fatalf("view error = %v", err)
	}
	if runs != 1 {
		t.Errorf("program ran %d times, want 1", runs)
	}
	if len(created) != 1 || created[0] != path {
		t.Errorf("watchers created for %v, want [%s]", created, path)
	}
}

func TestViewCommandWatchIgnoredForStdin(t *testing.T) {
	deps, stderr := testDeps(t, "a,b\n")
	deps.WatcherCreator = func(string) (watch.Notifier, error) {
		t.Error("no watcher should be created for stdin")
		return watch.NewTestWatcher(), nil
	}

	if _, err := execute(deps, "view", "--watch"); err != nil {
		t.Fatalf("view error = %v", err)
	}
	if !strings.Contains(stderr.String(), "--watch needs a file") {
		t.Errorf("stderr = %q, want a warning", stderr.String())
	}
}

func TestViewCommandRunnerError(t *testing.T) {
	deps, _ := testDeps(t, "a\n")
	want := errors.New("no tty")
	deps.ProgramRunner = func(*tea.Program) error { return want }

	if _, err := execute(deps, "view"); !errors.Is(err, want) {
		t.Errorf("view error = %v, want %v", err, want)
	}
}
