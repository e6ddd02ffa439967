package main

import (
	"log"

	"WhiteBoard/internal/state"
	"WhiteBoard/internal/ui"
)

func main() {
	log.Println("Starting White Board")
	board := state.NewCanvas()
	ui.RunApp(board)
}
