// Package notifytest provides testing helpers for code that shows
// notifications.
//
// A Harness wires a Notifier to a fresh document and a manual clock, so
// timers only fire when the test advances time:
//
//	func TestSaveShowsToast(t *testing.T) {
//	    h := notifytest.New()
//	    save(h.Notifier)
//
//	    h.ExpectCount(t, 1)
//	    h.Advance(3 * time.Second)
//	    h.ExpectCount(t, 0)
//	}
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	notifytest.ExpectContains(t, note.Node(), "Saved")
//	notifytest.ExpectAttribute(t, note.Node(), "role", "status")
package notifytest
