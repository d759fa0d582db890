// Package notifier displays transient toast notifications in a host document.
//
// A Notifier attaches one element per notification to the document body at
// one of nine fixed anchors, and removes it when the user clicks its close
// affordance or, if a duration is set, when the duration elapses. An
// optional duration bar grows with elapsed time.
//
// # Quick Start
//
//	doc := dom.New()
//	style.Register(doc)
//
//	loop := timer.NewLoop()
//	n := notifier.New(doc, loop, notifier.WithPosition(3))
//
//	loop.Post(func() {
//	    n.Success(notifier.Settings{
//	        Title:           "Saved",
//	        Message:         "Your changes have been saved.",
//	        Duration:        3 * time.Second,
//	        ShowDurationBar: true,
//	    })
//	})
//
// # Positions
//
// Positions 1-9 cover a 3×3 grid in reading order: 1 is top-left, 5 is the
// center and 9 (the default) is bottom-right. Invalid positions are never an
// error; they fall back to bottom-right or leave the current position alone.
//
// # Kinds
//
// Error, Warning, Success and Info use the built-in kinds. Custom accepts a
// caller tag that becomes the class "notifier-<tag>"; tags must be CSS class
// safe identifiers, otherwise Custom returns ErrInvalidKind.
//
// # Lifecycle
//
// Every notification goes Created → Visible → Removed. Removal happens once:
// whichever of close-click and expiry comes first detaches the node, cancels
// the other pending timers and runs OnAfterRemove. Notifications at the same
// anchor overlap; there is no stacking.
//
// # Concurrency
//
// A Notifier, its document and its scheduler callbacks must all run on one
// goroutine. timer.Loop provides that for real timers.
package notifier
