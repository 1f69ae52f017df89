// cmd/evalscope/main.go
package main

import (
	cmd "github.com/mwiater/evalscope/internal/cli"
)

// main starts the evalscope CLI application by delegating to the
// cobra root command defined in the evalscope package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
