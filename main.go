package main

import "github.com/sqliterc/sqliterc/cmd"

func main() {
	cmd.Execute()
}
