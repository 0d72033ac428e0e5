// Package ports defines the interfaces between the layers of the gateway.
// Service ports are implemented by internal/app and called by the inbound
// HTTP handlers. Client ports are implemented by outbound adapters and called
// by internal/app.
package ports
