// Package obsidian is a client for the active-file endpoint of the Obsidian Local REST API plugin.
//
// The plugin is reached over HTTP on the loopback interface. A Client performs exactly one
// GET against {base_url}/active/ per call and normalizes the response into an ActiveFile.
//
// # Flavors
//
// Two versions of the API deliver the note path differently, and the Client is told which one
// it talks to through Config.Flavor. Nothing is probed at runtime.
//
//   - FlavorJSON sends Accept: application/vnd.olrapi.note+json and reads "path" and
//     "content" (or "body") from the JSON document.
//   - FlavorHeaders sends Accept: text/markdown, takes the body verbatim and reads the path
//     from Content-Location, falling back to the filename of Content-Disposition.
//
// Relative paths are joined onto Config.VaultPath when one is configured.
//
// # Errors
//
// Every failure is returned as a single error whose message carries the diagnostics. The
// sentinel values (ErrTimeout, ErrRequestFailed, ...) are wrapped so callers may also use
// errors.Is.
package obsidian
