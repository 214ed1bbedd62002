package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"gomoku/internal/game"
	"gomoku/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	modeFlag := flag.String("mode", "human_vs_computer", "human_vs_human (hvh) or human_vs_computer (hvc)")
	seed := flag.Int64("seed", 0, "seed for the computer's tie-breaking, 0 uses the clock")
	flag.Parse()

	mode, err := game.ParseMode(*modeFlag)
	if err != nil {
		log.Fatalf("%v: %q", err, *modeFlag)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	g, err := game.NewGame(mode, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	tui.NewApp(screen, g).Run()
}
