// Package utils provides terminal helpers shared by CLI commands:
// interactivity detection, confirmation prompts and reading piped input.
package utils
