// Package ebiten provides a windowed surface.Canvas and event loop built on
// github.com/hajimehoshi/ebiten/v2.
//
// Importing the package registers the "ebiten" backend with the surface
// registry at priority 100:
//
//	import _ "github.com/gogpu/texter/backend/ebiten"
//
// Glyph scratches are ebiten images filled with WritePixels and composited
// with DrawImage, so drawing happens on the GPU. Ebiten only executes image
// operations while the game loop runs; Window takes care of drawing from
// inside the loop.
//
// # Window
//
// Window opens an ebiten window, calls a draw function once on an offscreen
// Canvas, and presents that canvas every frame until the window is closed
// or Escape is pressed:
//
//	w := ebiten.NewWindow(ebiten.WindowOptions{Title: "Texter", Width: 800, Height: 600}, app.Draw)
//	if err := w.Run(); err != nil {
//	    log.Fatal(err)
//	}
package ebiten
