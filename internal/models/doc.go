// Package models enumerates the supported model providers and resolves
// already-known API keys from the secret store.
package models
