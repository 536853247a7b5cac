package main

import (
	"context"

	"github.com/asecurityteam/matchups/cmd/matchups-cli/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
