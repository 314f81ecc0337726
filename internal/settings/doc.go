// Package settings maintains the process-wide configuration record of the
// framework and converts it between three shapes: the typed Settings record,
// the sections-of-fields schema rendered by the web UI, and the persisted
// JSON document.
//
// Secret-bearing fields (API keys, credentials) never reach the JSON file or
// the UI schema: they are redirected to the secret store on save and shown
// as a fixed placeholder token when present.
package settings
