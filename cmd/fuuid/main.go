// Command fuuid generates and validates FUUIDs.
//
//	fuuid new -n 3
//	fuuid new --v7
//	fuuid v5 --namespace dns example.com
//	fuuid validate < ids.txt
//
// Settings may also come from FUUID_* environment variables or --config.
package main

import (
	"os"

	"github.com/Lzww0608/fuuid/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], cli.Env{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}))
}
