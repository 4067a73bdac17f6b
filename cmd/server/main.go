// Command server runs the glossary HTTP service.
//
//	server            serve using CONFIG_PATH or ./config.yaml plus ENV
//	server -env       list the environment variables and exit
//	server -version   print the build version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/heartmarshall/glossary-backend/internal/app"
	"github.com/heartmarshall/glossary-backend/internal/config"
)

func main() {
	showEnv := flag.Bool("env", false, "list configuration environment variables and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	switch {
	case *showVersion:
		fmt.Println(app.BuildVersion())
		return
	case *showEnv:
		desc, err := config.Describe()
		if err != nil {
			log.Fatalf("server: describe config: %v", err)
		}
		fmt.Println(desc)
		return
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
