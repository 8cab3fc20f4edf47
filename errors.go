package texter

import "fmt"

// Initialization stages reported by InitError.
const (
	StageConfig = "config"
	StageFont   = "font"
	StageCanvas = "canvas"
	StageWindow = "window"
)

// InitError reports a failure while starting the program: reading the
// configuration, loading the font, creating a canvas or opening the window.
// Nothing has been drawn when it is returned.
type InitError struct {
	// Stage is one of StageConfig, StageFont, StageCanvas or StageWindow.
	Stage string

	// Err is the underlying error.
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("texter: init %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *InitError) Unwrap() error {
	return e.Err
}

func initError(stage string, err error) error {
	return &InitError{Stage: stage, Err: err}
}
