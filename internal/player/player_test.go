package player

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/ytget/quickplay/internal/logging"
	"github.com/ytget/quickplay/internal/model"
)

// stubBinary writes a shell script standing in for mpv.
func stubBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs are not runnable on windows")
	}
	path := filepath.Join(t.TempDir(), "mpv")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func testLauncher(binary string) *Launcher {
	return &Launcher{
		state:          model.StateIdle,
		binaryOverride: binary,
		stopTimeout:    defaultStopTimeout,
		log:            logging.Module("player"),
	}
}

func TestPlayStopIdempotent(t *testing.T) {
	l := testLauncher(stubBinary(t, "sleep 60"))

	if err := l.Play("/tmp/a.mkv"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !l.IsPlaying() {
		t.Fatal("expected playing after Play")
	}
	if got := l.State(); got != model.StateRunning {
		t.Fatalf("State = %v, want %v", got, model.StateRunning)
	}

	l.Stop()
	if l.IsPlaying() {
		t.Fatal("expected stopped after Stop")
	}
	if got := l.State(); got != model.StateIdle {
		t.Fatalf("State = %v, want %v", got, model.StateIdle)
	}

	// A second Stop must be a no-op.
	l.Stop()
}

func TestOnCloseFires(t *testing.T) {
	l := testLauncher(stubBinary(t, "exit 0"))

	closed := make(chan model.Session, 1)
	l.SetOnClose(func(s model.Session) { closed <- s })

	if err := l.Play("/tmp/a.mkv"); err != nil {
		t.Fatalf("Play: %v", err)
	}

	select {
	case s := <-closed:
		if s.Path != "/tmp/a.mkv" {
			t.Fatalf("closed session path = %q", s.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("onClose not fired")
	}
	if l.IsPlaying() {
		t.Fatal("still playing after process exit")
	}
}

func TestOnCloseSilentOnStop(t *testing.T) {
	l := testLauncher(stubBinary(t, "sleep 60"))

	var mu sync.Mutex
	fired := false
	l.SetOnClose(func(model.Session) {
		mu.Lock()
		fired = true
		mu.Unlock()
	})

	if err := l.Play("/tmp/a.mkv"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	l.Stop()

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if fired {
		t.Fatal("onClose fired for an explicitly stopped session")
	}
}

func TestPlaySupersedes(t *testing.T) {
	l := testLauncher(stubBinary(t, "sleep 60"))

	if err := l.Play("/tmp/a.mkv"); err != nil {
		t.Fatalf("Play a: %v", err)
	}
	first, ok := l.Current()
	if !ok {
		t.Fatal("no current session after first Play")
	}

	if err := l.Play("/tmp/b.mkv"); err != nil {
		t.Fatalf("Play b: %v", err)
	}
	second, ok := l.Current()
	if !ok {
		t.Fatal("no current session after second Play")
	}
	if second.PID == first.PID {
		t.Fatal("second Play reused the first process")
	}
	if second.Path != "/tmp/b.mkv" {
		t.Fatalf("current path = %q, want /tmp/b.mkv", second.Path)
	}
	l.Stop()
}

func TestPlayMissingBinary(t *testing.T) {
	l := testLauncher(filepath.Join(t.TempDir(), "nope"))

	err := l.Play("/tmp/a.mkv")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Play = %v, want ErrNotFound", err)
	}
}

func TestLocateFallsBackToPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH stub setup is unix only")
	}
	dir := t.TempDir()
	stub := filepath.Join(dir, "mpv")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", dir)

	l := testLauncher("")
	path, err := l.Locate()
	if err != nil {
		// A system-wide mpv in a well-known location wins over PATH.
		t.Fatalf("Locate: %v", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("Locate returned nonexistent path %q", path)
	}
}
