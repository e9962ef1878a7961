package archipelago

import (
	"testing"
	"time"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "grow", "x": 100, "y": 200, "ms": 1500},
			{"action": "wait", "frames": 3},
			{"action": "click", "x": 100, "y": 200}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "grow" || runner.steps[1].X != 100 || runner.steps[1].MS != 1500 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "drag"}]}`))
	if err == nil {
		t.Error("expected error for unknown action")
	}
}

func runUntilDone(t *testing.T, sim *Simulation, runner *TestRunner, maxSteps int) {
	t.Helper()
	for i := 0; i < maxSteps && !runner.Done(); i++ {
		sim.Step()
	}
	if !runner.Done() {
		t.Fatalf("runner not done after %d steps", maxSteps)
	}
}

func TestRunner_GrowsBodies(t *testing.T) {
	sim, _ := newTestSim(t, 1280, 720, "A", "B")
	sim.SetClock(NewFrameClock(DefaultFrameTime))

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "grow", "x": 300, "y": 300, "ms": 2000},
		{"action": "grow", "x": 900, "y": 300, "ms": 2000},
		{"action": "screenshot", "label": "two islands"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	sim.SetTestRunner(runner)
	runUntilDone(t, sim, runner, 100)

	bodies := sim.Bodies()
	if len(bodies) != 2 {
		t.Fatalf("bodies = %d, want 2", len(bodies))
	}
	for i, want := range []string{"A", "B"} {
		if bodies[i].Radius() != MaxRadius || bodies[i].Link != want {
			t.Errorf("body %d: r=%v link=%q, want r=%v link=%q",
				i, bodies[i].Radius(), bodies[i].Link, MaxRadius, want)
		}
	}
	labels := sim.TakeScreenshotRequests()
	if len(labels) != 1 || labels[0] != "two islands" {
		t.Errorf("screenshot labels = %v", labels)
	}
	if sim.TakeScreenshotRequests() != nil {
		t.Error("screenshot queue not drained")
	}
}

func TestRunner_ClickOpensLink(t *testing.T) {
	sim, _ := newTestSim(t, 1280, 720)
	var op recordingOpener
	sim.SetOpener(&op)
	sim.AddBody(640, 360, 100, "https://island.example/")

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 640, "y": 360}]}`))
	if err != nil {
		t.Fatal(err)
	}
	sim.SetTestRunner(runner)
	runUntilDone(t, sim, runner, 10)

	if len(op.opened) != 1 || op.opened[0] != "https://island.example/" {
		t.Errorf("opened = %v", op.opened)
	}
	if len(sim.Bodies()) != 1 {
		t.Errorf("bodies = %d, click on a body must not spawn", len(sim.Bodies()))
	}
}

func TestRunner_WaitFrames(t *testing.T) {
	sim, _ := newTestSim(t, 800, 600)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 5}]}`))
	if err != nil {
		t.Fatal(err)
	}
	sim.SetTestRunner(runner)

	steps := 0
	for !runner.Done() && steps < 20 {
		sim.Step()
		steps++
	}
	if steps != 6 {
		t.Errorf("wait 5 finished after %d steps, want 6", steps)
	}
}

func TestRunner_HoldOnFrameClock(t *testing.T) {
	sim, clk := newTestSim(t, 800, 600)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "hold", "ms": 750}]}`))
	if err != nil {
		t.Fatal(err)
	}
	sim.SetTestRunner(runner)
	runUntilDone(t, sim, runner, 10)
	if clk.Now() != 750*time.Millisecond {
		t.Errorf("clock = %v, want 750ms", clk.Now())
	}
}
