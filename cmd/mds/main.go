package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fulldump/goconfig"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/mds/bootstrap"
	"github.com/fulldump/mds/configuration"
)

func main() {

	c := configuration.Default()
	goconfig.Read(c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowConfig {
		json.MarshalWrite(os.Stderr, c, jsontext.WithIndent("    "))
		fmt.Fprintln(os.Stderr)
	}

	err := bootstrap.Bootstrap(c)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
}
