// Package envline encodes string maps to and from dotenv-style KEY=VALUE
// text blocks, used for free-form model parameter fields in the settings UI.
package envline
