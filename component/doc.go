// Package component defines the lifecycle contract for long-lived
// infrastructure pieces such as the Vault transport.
//
//   - Component: Start/Stop/Health
//   - Describable: one-line startup description
package component
