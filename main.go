// Package main provides the entry point for the pfgen CLI application.
package main

import (
	"fmt"
	"os"

	"pfgen/cmd/checkroster"
	"pfgen/cmd/generate"
	"pfgen/cmd/root"
	"pfgen/cmd/template"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(generate.Cmd)
	root.Cmd.AddCommand(template.Cmd)
	root.Cmd.AddCommand(checkroster.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
