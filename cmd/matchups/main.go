package main

// The matchups service reads its configuration from MATCHUPS_ prefixed
// environment variables. Run with -h to list them.
//
// Once running, a report can be requested like:
//
//		curl 'localhost:8080/api/matchups?league=main&week=3'

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asecurityteam/matchups"
	"github.com/asecurityteam/settings/v2"
)

func main() {
	// Handle the -h flag and print settings.
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(matchups.Help())
		return
	}

	source, err := settings.NewEnvSource(os.Environ())
	if err != nil {
		panic(err.Error())
	}
	if err := matchups.Start(context.Background(), source); err != nil {
		panic(err.Error())
	}
}
