// cmd/gffq/main.go
package main

import (
	"gffq/internal/app"
	"gffq/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
