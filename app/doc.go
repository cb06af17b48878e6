// Package app runs the host event loop that every control, table and draw
// callback executes on.
//
// A Context replaces process-wide init state: create one with New,
// Init it once, drive it with Main (or MainSteps and MainStep for hosts
// that own their loop), and Uninit it once when the loop returns.
//
//	ctx := app.New(app.WithConfig(cfg))
//	if err := ctx.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Uninit()
//
//	w := control.NewWindow("Hello", 640, 480, false)
//	w.OnClosing(func(*control.Window) bool { return true })
//	ctx.Track(w)
//	w.Show()
//	ctx.Main()
//
// All UI work happens on the goroutine that calls Main or MainStep.
// Other goroutines hand work to it with QueueMain; Timer callbacks are
// delivered the same way.
//
// The loop talks to the platform through a Driver chosen by name. The
// built-in "headless" driver has no windows of its own and only wakes up
// for queued work, which makes it suitable for tests and servers.
package app
