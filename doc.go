// Package archipelago is a small interactive 2D physics toy: press and hold
// on empty canvas to grow an island, release to drop it. Islands drift on
// Perlin noise, bounce off each other and the walls, shy away from the
// pointer, and open a link when pressed. A handful of letters wander between
// them.
//
// The package holds the simulation only and has no graphics dependency.
// Render surfaces live in sub-packages: [github.com/phanxgames/archipelago/screen]
// opens an Ebitengine window, [github.com/phanxgames/archipelago/term] draws
// into a terminal with tcell.
//
// # Quick start
//
//	sim, err := archipelago.NewSimulation(archipelago.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	sim.SetOpener(launch.NewBrowser())
//	screen.Run(sim, screen.RunConfig{Title: "archipelago"})
//
// To drive a simulation yourself, forward input and call [Simulation.Step]
// once per frame, then [Simulation.Draw] with anything that implements
// [Canvas]:
//
//	sim.SetPointer(x, y)
//	if justPressed {
//		sim.Press(x, y)
//	}
//	if justReleased {
//		sim.Release(x, y)
//	}
//	sim.Step()
//	sim.Draw(canvas)
//
// # Frame order
//
// Each Step integrates every body, resolves each colliding pair once in
// insertion order, applies pointer repulsion, bounces bodies off the walls,
// then integrates the glyphs and nudges them out of the bodies. Collisions
// are not iterated to a fixed point, so a pile of three or more overlapping
// bodies untangles over several frames.
//
// # Scripted input
//
// [Simulation.InjectPress], [Simulation.InjectRelease] and
// [Simulation.InjectGrow] queue synthetic events consumed one per Step.
// [LoadTestScript] builds a [TestRunner] from JSON. Pair either with a
// [FrameClock] for fully deterministic runs.
package archipelago
