// Package commands implements the holyphone CLI: classification, conversion
// and validation of Israeli and Palestinian phone numbers from arguments or
// standard input.
package commands
