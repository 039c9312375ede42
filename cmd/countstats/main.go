package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ciricc/countstats/internal/app"
	"github.com/ciricc/countstats/internal/config"
)

func main() {
	application, err := app.New(config.DefaultPath)
	if err != nil {
		fatalf("init error: %v", err)
	}

	if err := application.Run(context.Background()); err != nil {
		fatalf("countstats: %v", err)
	}
}

func fatalf(format string, a ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
