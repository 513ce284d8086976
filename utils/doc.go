// Package utils provides internal utility functions shared by the formatters
// and the HTTP server.
//
// It contains:
//   - Time formatting utilities
//   - Number formatting for console output
//   - XML text escaping
package utils
