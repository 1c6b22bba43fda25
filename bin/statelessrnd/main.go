package main

import (
	"log"
	"os"

	"github.com/joomcode/statelessrnd/internal/cli"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	if err := cli.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
