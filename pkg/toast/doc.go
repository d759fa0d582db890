// Package toast provides one-line helpers over a notifier.Notifier.
//
// Most call sites only need a kind and a message:
//
//	toast.Success(n, "Project deleted")
//	toast.Error(n, "Failed to delete project")
//
// With title:
//
//	toast.WithTitle(n, toast.TypeSuccess, "Settings", "Your changes have been saved.")
//
// Auto-dismissing after a duration, with a duration bar:
//
//	toast.Timed(n, toast.TypeInfo, "Reconnecting…", 5*time.Second)
//
// Helpers for the built-in types never fail. Show and Timed accept any
// Type and return notifier.ErrInvalidKind for tags that are not CSS class
// safe.
package toast
