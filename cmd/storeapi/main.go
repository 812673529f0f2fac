package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/openretail/storeapi/config"
	"github.com/openretail/storeapi/internal/api"
	"github.com/openretail/storeapi/internal/app"
	"github.com/openretail/storeapi/internal/webserver"
	"go.uber.org/zap"
)

var (
	h        = flag.Bool("h", false, "help usage")
	showVer  = flag.Bool("v", false, "show version")
	conffile = flag.String("c", "/etc/storeapi.yml", "config file")
	initdb   = flag.Bool("initdb", false, "drop and recreate the database schema, exit")
)

var version = "dev"

func main() {
	flag.Parse()
	if *h {
		flag.Usage()
		os.Exit(0)
	}
	if *showVer {
		fmt.Println("storeapi", version)
		os.Exit(0)
	}

	cfg := config.LoadConfig(*conffile)

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.S().Info("database schema recreated")
		return
	}

	webserver.Init(application)
	api.Init(application)

	if err := webserver.Listen(); err != nil {
		zap.S().Fatalf("webserver stopped: %v", err)
	}
}
