// Command mood-mirror runs the mood analysis service and CLI.
package main

import "github.com/ksandoval/mood-mirror/internal/cmd"

func main() {
	cmd.Execute()
}
