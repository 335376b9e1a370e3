package main

import "manim-studio/internal/cli"

func main() {
	cli.Execute()
}
