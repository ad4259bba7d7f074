// Command portalctl administers the portal's document store offline:
// migrations, candidate accounts and program settings.
package main

import (
	"os"

	"github.com/MKhiriev/intern-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := NewRootCmd(defaultDeps())
	root.Version = models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String()
	root.SetVersionTemplate("{{.Version}}\n")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
