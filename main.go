package main

import (
	"context"

	"github.com/FlorentATo/pixie/cmd"
)

func main() {
	cmd.Execute(context.Background())
}
