package main

import (
	"github.com/vocabquest/vocabquest-go/internal/cli"
)

func main() {
	cli.Execute()
}
