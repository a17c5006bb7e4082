package main

import (
	"errors"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	androidmcp "github.com/viant/android-mcp"
)

func main() {
	if err := androidmcp.Run(os.Args[1:]); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		log.Fatal(err)
	}
}
