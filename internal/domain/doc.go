// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/invoice, domain/catalog).
// This root package holds the sentinel errors and the field-level validation
// error that every layer maps to and from.
package domain
