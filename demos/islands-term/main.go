// islands-term runs the archipelago in a terminal. Click and hold with the
// mouse to grow islands; Esc, Ctrl-C or q quits.
package main

import (
	"flag"
	"log"

	"github.com/phanxgames/archipelago"
	"github.com/phanxgames/archipelago/launch"
	"github.com/phanxgames/archipelago/sound"
	"github.com/phanxgames/archipelago/term"
)

func main() {
	envFile := flag.String("env", ".env", "environment file with ARCHIPELAGO_* settings")
	flag.Parse()

	cfg, err := archipelago.LoadConfig(*envFile)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := archipelago.NewSimulation(cfg)
	if err != nil {
		log.Fatal(err)
	}
	sim.SetOpener(launch.NewBrowser())

	if !cfg.Mute {
		player := sound.NewPlayer()
		// Non-fatal, the terminal can run without sound. Logged before the
		// screen is taken over so the message stays readable.
		if err := player.Init(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer player.Close()
			player.Attach(sim)
		}
	}

	if err := term.Run(sim, cfg.FrameTime); err != nil {
		log.Fatal(err)
	}
}
