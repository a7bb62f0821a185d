package main

import (
	"context"

	"github.com/faizmokh/flowgen/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
