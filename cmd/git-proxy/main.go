package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/git-proxy/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(info)

	if err := newRootCmd(info).Execute(); err != nil {
		os.Exit(1)
	}
}
