// SPDX-License-Identifier: EPL-2.0

// Package render shows pipeline readings.
//
// A [Renderer] receives one [pipeline.Reading] per call. Rendering is fire
// and forget: callers log a failed Display and carry on with the next
// reading.
//
// The capture loop and the renderers run at different speeds, so readings
// cross over through a [Mailbox], a single slot in which the newest reading
// replaces any that was not yet displayed. Readings are never reordered.
//
// Implementations:
//   - [Terminal] paints a 24-bit ANSI color swatch per reading.
//   - [Hub] pushes readings as JSON to browsers over a websocket.
//   - [Log] writes readings to a slog.Logger.
//   - [Multi] fans one reading out to several renderers.
package render
