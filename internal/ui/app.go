package ui

import (
	"fmt"
	"log"

	"WhiteBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const WindowTitle = "White Board"

// NewWindow lays out the board, toolbar and status line in a fixed-size
// master window of a.
func NewWindow(a fyne.App, c *state.Canvas) fyne.Window {
	w := a.NewWindow(WindowTitle)

	board := NewBoardWidget(c)
	status := widget.NewLabel("Ready")
	board.OnPress = func(ev state.PressEvent) {
		status.SetText(fmt.Sprintf("#%d (%.3f, %.3f) %s", ev.Seq, ev.User.X, ev.User.Y, state.ColorName(ev.Color)))
	}

	content := container.NewBorder(NewToolbar(board, status), status, nil, nil, board)
	w.SetContent(content)
	w.SetFixedSize(true)
	w.SetMaster()
	return w
}

// RunApp opens the whiteboard window and blocks until it is closed.
func RunApp(c *state.Canvas) {
	a := app.New()
	w := NewWindow(a, c)
	log.Printf("[UI] window %q open for canvas %s", WindowTitle, c.ID())
	w.ShowAndRun()
	log.Println("[UI] window closed")
}
