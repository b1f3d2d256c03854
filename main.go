package main

import "github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/cmd"

// Set by goreleaser ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
