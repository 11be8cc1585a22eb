// Command fndecorate applies //fndecorate:use decorators through go build overlays.
package main

import "github.com/mouse-blink/fndecorate/cmd"

func main() {
	cmd.Execute()
}
