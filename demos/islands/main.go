// islands opens a window where pressing and holding grows an island,
// releasing drops it, and clicking an island opens its link.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/archipelago"
	"github.com/phanxgames/archipelago/launch"
	"github.com/phanxgames/archipelago/screen"
	"github.com/phanxgames/archipelago/sound"
)

func main() {
	envFile := flag.String("env", ".env", "environment file with ARCHIPELAGO_* settings")
	showFPS := flag.Bool("fps", false, "show the FPS overlay")
	script := flag.String("script", "", "JSON input script to play back, closing the window when done")
	shots := flag.String("screenshots", "screenshots", "directory for screenshots (F12 or script)")
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
		if err := player.Init(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer player.Close()
			player.Attach(sim)
		}
	}

	var runner *archipelago.TestRunner
	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			log.Fatal(err)
		}
		if runner, err = archipelago.LoadTestScript(data); err != nil {
			log.Fatal(err)
		}
	}

	if err := screen.Run(sim, screen.RunConfig{
		Title:         "archipelago",
		Width:         int(cfg.Width),
		Height:        int(cfg.Height),
		ShowFPS:       *showFPS,
		ScreenshotDir: *shots,
		Runner:        runner,
	}); err != nil {
		log.Fatal(err)
	}
}
