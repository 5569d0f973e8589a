// The greeter binary prints a single pretty-printed JSON greeting built
// from the NAME environment variable. It has no failure path and always
// exits zero.
package main

import (
	"os"

	"funcbox/funcs/greeter"
)

func main() {
	greeter.Render(os.Stdout, greeter.FromEnv())
}
