// Package runtime reports the execution environment of the process
// (containerized vs. native development) and hosts the privileged
// root-password side effect that is only permitted inside a container.
package runtime
