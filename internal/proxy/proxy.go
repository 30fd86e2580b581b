// Package proxy builds navigation targets for the proxy panel.
package proxy

import (
	"fmt"
	"net/url"
	"strings"
)

// Engine is the rewriting proxy implementation
type Engine string

const (
	EngineUV       Engine = "uv"
	EngineScramjet Engine = "scramjet"
)

// Engines lists the selectable engines in panel order
var Engines = []Engine{EngineUV, EngineScramjet}

// Transport is the wire transport the engine tunnels through
type Transport string

const (
	TransportEpoxy   Transport = "epoxy"
	TransportLibcurl Transport = "libcurl"
)

// Transports lists the selectable transports in panel order
var Transports = []Transport{TransportEpoxy, TransportLibcurl}

// Status is the connection state shown in the proxy status line
type Status int

const (
	StatusReady Status = iota
	StatusConnecting
	StatusConnected
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusConnecting:
		return "Connecting..."
	case StatusConnected:
		return "Connected"
	case StatusError:
		return "Error"
	default:
		return "Ready"
	}
}

// Normalize trims raw and prefixes https:// when it does not start with
// http. It returns false for empty input.
func Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if !strings.HasPrefix(raw, "http") {
		raw = "https://" + raw
	}
	return raw, true
}

// Target returns the proxy page address for dest
func Target(base string, engine Engine, transport Transport, dest string) string {
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return fmt.Sprintf("%sproxy.html?engine=%s&transport=%s&url=%s",
		base, engine, transport, EncodeURIComponent(dest))
}

// StatusLine renders the engine, transport and connection state
func StatusLine(engine Engine, transport Transport, status Status) string {
	return fmt.Sprintf("Engine: %s | Transport: %s | %s",
		strings.ToUpper(string(engine)), strings.ToUpper(string(transport)), status)
}

var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers encode a URI component
func EncodeURIComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}
