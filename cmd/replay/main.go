/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/replaydb/cmd/replay/cmd"

func main() {
	cmd.Execute()
}
