// Package helpers provides general test helper functions and utilities.
package helpers
