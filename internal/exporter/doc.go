// Package exporter serves compositor state over HTTP.
//
// A background poller queries the control socket on an interval and
// refreshes prometheus gauges; the HTTP surface exposes /metrics plus
// read-only /v1 routes that decode fresh state per request. The exporter
// never caches decoded values between requests and never subscribes to
// the event socket.
package exporter
