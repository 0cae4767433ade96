// cmd/punnett/main.go
package main

import (
	"punnett/internal/app"
	"punnett/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
