package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
 __                                         
/ /__      ______ ___  ___  _________ ____ 
/ __/ | /| / / __ '__ \/ _ \/ ___/ __ '/ _ \
/ /_ | |/ |/ / / / / / /  __/ /  / /_/ /  __/
\__/ |__/|__/_/ /_/ /_/\___/_/   \__, /\___/ 
                                /____/       
`

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}

// GetUpdateCallback returns a callback function that updates twmerge
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("twmerge", version)()
	}
}
