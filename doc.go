// Package pulseicon renders the ServerPulse application icon.
//
// # Overview
//
// The icon is a 1024x1024 RGBA image painted in software, layer by layer:
//
//   - a dark vertical gradient background
//   - a faint circuit grid with seeded node dots
//   - a server rack silhouette
//   - a glowing electrocardiogram pulse with a bright endpoint
//   - a row of status indicator dots
//   - a vignette
//
// The stack is then clipped to a rounded rectangle with the platform icon
// corner radius (22.37% of the edge) and finished with a faint inner
// border.
//
// # Quick Start
//
//	ic, err := pulseicon.New()
//	if err != nil {
//	    return err
//	}
//	if err := ic.WriteFile("AppIcon.png"); err != nil {
//	    return err
//	}
//
// # Determinism
//
// Rendering uses integer compositing and a PCG random stream with a fixed
// seed. Two renders of the same Config produce identical pixels and
// identical PNG bytes.
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down. Painter
// box arguments are inclusive pixel bounds; see [Painter].
package pulseicon
