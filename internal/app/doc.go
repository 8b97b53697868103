// Package app provides the application logic behind the CLI commands:
// sending a single request through the logging client and managing the configuration file.
package app
