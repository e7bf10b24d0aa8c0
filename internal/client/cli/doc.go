// Package cli provides the interactive rentverse terminal client.
//
// It wires configuration, the local credential database, the API services
// and the session manager, then runs a REPL. On start the stored session is
// checked and the resulting status is shown in the prompt.
//
// Key features:
//   - Register / Login / Logout, profile and avatar updates
//   - Browse and filter properties, create listings
//   - Favorites and bookings
//   - Reverse geocoding of coordinates
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
