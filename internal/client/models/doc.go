// Package models defines the records exchanged with the rental API and the
// client-side validation applied before they are sent.
package models
