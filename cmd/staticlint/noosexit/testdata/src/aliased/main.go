package main

import (
	sys "os"
)

func main() {
	func() {
		sys.Exit(2) // want "direct call to os.Exit in main.main"
	}()
}
