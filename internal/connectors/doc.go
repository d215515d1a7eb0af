// Package connectors provides implementations of the ContentSource
// interface for code hosts. Each connector knows how to fetch
// repository trees and file contents from a specific host.
package connectors
