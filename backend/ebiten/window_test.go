package ebiten

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/texter/surface"
)

func newTestWindow(draw DrawFunc) (*Window, *bool) {
	w := NewWindow(WindowOptions{Title: "test", Width: 40, Height: 30}, draw)
	w.newCanvas = func(width, height int) (surface.Canvas, error) {
		return surface.NewImageCanvas(width, height), nil
	}
	quit := new(bool)
	w.quit = func() bool { return *quit }
	return w, quit
}

func TestWindowDrawsOnce(t *testing.T) {
	calls := 0
	w, quit := newTestWindow(func(c surface.Canvas) error {
		calls++
		if got := c.Bounds().Size(); got.X != 40 || got.Y != 30 {
			t.Errorf("canvas size = %v, want 40x30", got)
		}
		c.Fill(color.White)
		return nil
	})

	for range 3 {
		if err := w.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("draw called %d times, want 1", calls)
	}

	*quit = true
	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after escape = %v, want ebiten.Termination", err)
	}

	w.release()
	if w.canvas != nil {
		t.Error("release kept the canvas")
	}
}

func TestWindowDrawError(t *testing.T) {
	boom := errors.New("render failed")
	w, _ := newTestWindow(func(surface.Canvas) error { return boom })

	if err := w.Update(); !errors.Is(err, boom) {
		t.Fatalf("Update = %v, want draw error", err)
	}
	if !errors.Is(w.err, boom) {
		t.Errorf("window kept %v, want draw error", w.err)
	}
}

func TestWindowCanvasError(t *testing.T) {
	w, _ := newTestWindow(func(surface.Canvas) error {
		t.Error("draw called without a canvas")
		return nil
	})
	w.newCanvas = func(int, int) (surface.Canvas, error) {
		return nil, surface.ErrNoBackendAvailable
	}

	if err := w.Update(); !errors.Is(err, surface.ErrNoBackendAvailable) {
		t.Errorf("Update = %v, want canvas error", err)
	}
}

func TestWindowLayoutAndDefaults(t *testing.T) {
	w := NewWindow(WindowOptions{Width: 800, Height: 600}, nil)
	if w.opts.TPS != 30 {
		t.Errorf("default TPS = %d, want 30", w.opts.TPS)
	}
	if gw, gh := w.Layout(1920, 1080); gw != 800 || gh != 600 {
		t.Errorf("Layout = %dx%d, want 800x600", gw, gh)
	}

	if err := NewWindow(WindowOptions{Width: 0, Height: 10}, nil).Run(); !errors.Is(err, surface.ErrInvalidSize) {
		t.Errorf("Run with zero width = %v, want ErrInvalidSize", err)
	}
}

func TestDisplayAvailable(t *testing.T) {
	tests := []struct {
		goos, display string
		want          bool
	}{
		{"windows", "", true},
		{"darwin", "", true},
		{"linux", "", false},
		{"linux", ":0", true},
		{"freebsd", "", false},
	}
	for _, tt := range tests {
		if got := displayAvailable(tt.goos, tt.display); got != tt.want {
			t.Errorf("displayAvailable(%q, %q) = %v, want %v", tt.goos, tt.display, got, tt.want)
		}
	}
}

func TestRegistered(t *testing.T) {
	// ebiten outranks the CPU image backend.
	if diff := cmp.Diff([]string{BackendEbiten, "image"}, surface.List()); diff != "" {
		t.Errorf("surface.List() mismatch (-want +got):\n%s", diff)
	}
	if _, err := NewCanvas(0, 5); !errors.Is(err, surface.ErrInvalidSize) {
		t.Errorf("NewCanvas(0, 5) = %v, want ErrInvalidSize", err)
	}
}
