package main

import "github.com/NicoEre03/habit-tracker/cmd/hg/root"

func main() {
	root.Execute()
}
