// Package app wires configuration, logging and the command manager together
// for the juiceargs binary.
package app
