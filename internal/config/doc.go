// Package config loads notifier.json.
//
// A minimal configuration file:
//
//	{
//	  "position": 3,
//	  "durationMs": 4000,
//	  "showDurationBar": true
//	}
//
// All fields are optional. Custom kinds can be themed:
//
//	{
//	  "kinds": {
//	    "promo": {"accent": "#7b2ff7", "background": "#efe5ff"}
//	  }
//	}
//
// notifier.yaml is read when notifier.json is absent. Scalar fields can be
// overridden from the environment: NOTIFIER_POSITION, NOTIFIER_DURATION_MS,
// NOTIFIER_SHOW_DURATION_BAR, NOTIFIER_TICK_MS, NOTIFIER_LOG_LEVEL and
// NOTIFIER_METRICS_NAMESPACE.
//
// Out-of-range positions fall back to 9 (bottom-right), matching the
// notifier's own policy. Validate rejects values that cannot be used.
package config
