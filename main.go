package main

import (
	"flag"

	"github.com/anikashraful/taskflow/internal/front"
)

func main() {
	confPath := flag.String("config", ".env", "path to the env configuration file")
	flag.Parse()

	front.InitAndServe(*confPath)
}
