// revenge - terminal simulator for the 4x4x4 cube.
package main

import (
	"github.com/SeamusWaldron/revenge/internal/cli"
)

func main() {
	cli.Execute()
}
