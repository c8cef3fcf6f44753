package main

type exiter struct{}

func (exiter) Exit(int) {}

func main() {
	os := exiter{}
	os.Exit(1)
}
