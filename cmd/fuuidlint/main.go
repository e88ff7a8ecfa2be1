// Command fuuidlint checks that every fuuid.Literal argument is a valid
// constant FUUID.
//
// Run it directly or as a vet tool:
//
//	go install github.com/Lzww0608/fuuid/cmd/fuuidlint@latest
//	go vet -vettool=$(which fuuidlint) ./...
//
// A non-zero exit status fails the build step that invoked it.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/Lzww0608/fuuid/literal"
)

func main() {
	singlechecker.Main(literal.Analyzer)
}
