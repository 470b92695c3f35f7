// Public domain.

package main

import "github.com/soniakeys/mpcquery/internal/mqprog"

func main() {
	mqprog.Main()
}
