package main

import (
	"os"

	"github.com/rifa-456/gotracer/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args))
}
