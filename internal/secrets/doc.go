// Package secrets persists individual secret values in an env-format file
// kept outside the settings JSON. API keys are stored under the uppercased
// provider name; login and password secrets use fixed keys.
package secrets
