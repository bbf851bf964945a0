// Package main is the entry point for the wikiadminsupport CLI tool, which
// groups per-map QuakeWorld stat files into series and generates wiki markup
// and HTML match reports.
package main

import "github.com/Xerialen/wikiadminsupport/cmd"

func main() {
	cmd.Execute()
}
