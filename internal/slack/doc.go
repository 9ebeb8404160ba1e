// Package slack posts new-hire announcements to a configured incoming
// webhook. When no webhook is configured a noop implementation is returned
// so callers never branch on configuration.
package slack
