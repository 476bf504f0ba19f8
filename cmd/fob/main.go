// fob filters a stream of named objects by keyword with AND/OR logic.
package main

import (
	"os"

	"github.com/seojun-lee/fob/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
