package main

import (
	"github.com/lunixbochs/rvsim/go/cmd"

	_ "github.com/lunixbochs/rvsim/go/cmd/run"
	_ "github.com/lunixbochs/rvsim/go/cmd/shell"
	_ "github.com/lunixbochs/rvsim/go/cmd/trace"
)

func main() { cmd.Main() }
