// Package cli provides the interactive EzyCook command-line client.
//
// It wires configuration, the local SQLite cache, the HTTP API clients, and
// an interactive REPL. Typical flow: start the REPL, browse or filter the
// public recipe collection, log in to manage your own recipes and profile,
// and curate a local favorites list that works with or without a network.
//
// Key features:
//   - Signup / Login / Logout, password recovery
//   - Browse, filter, and search recipes; show a single recipe
//   - Create and delete own recipes (with image upload)
//   - Local favorites: toggle and list, fully offline
//   - View and edit the user profile
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
