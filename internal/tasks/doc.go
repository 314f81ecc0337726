// Package tasks runs fire-and-forget background work. Task failures are not
// observed by callers; they are recovered and logged.
package tasks
