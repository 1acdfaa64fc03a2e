// Package main is the entry point for the incfix CLI.
package main

import "incfix.dev/pkg/incfix/cmd"

func main() {
	cmd.Execute()
}
