// Package timer provides the host timer facility notifications schedule against.
//
// Scheduler is the capability: a clock plus one-shot and recurring timers.
// Two implementations are provided:
//
//   - Loop runs every callback on a single goroutine. Timers fire on runtime
//     goroutines but only post their callback to the loop, so document and
//     notification state is never touched concurrently.
//   - Fake is a manual clock for headless tests. Advance moves time forward
//     and fires due timers synchronously, in due order.
//
// # Usage
//
//	loop := timer.NewLoop()
//	loop.Post(func() {
//	    n := notifier.New(doc, loop)
//	    n.Info(notifier.Settings{Message: "Hi", Duration: 3 * time.Second})
//	})
//	err := loop.Run(ctx)
package timer
