// Package utils provides small helpers shared by the HTTP pipeline,
// such as log text truncation and User-Agent providers.
package utils
