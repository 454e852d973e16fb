// Package notify reports compilation errors forwarded by the notification
// descriptor of the development configuration.
package notify
