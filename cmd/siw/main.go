// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command siw solves grounded STRIPS problems with Serialized IW.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
