// Package app holds the application services. They coordinate the domain
// with the outbound ports and add logging and metrics; business rules live
// in internal/domain.
package app
