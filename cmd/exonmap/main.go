// cmd/exonmap/main.go
package main

import (
	"exonmap/internal/app"
	"exonmap/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
