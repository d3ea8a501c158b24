package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const cliToolVersion = "strscript 0.1.0"

// errReported marks a failure whose diagnostic has already been written.
var errReported = errors.New("reported")

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand(&app{stdin: stdin, stdout: stdout, stderr: stderr})
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return 0
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return 1
}
