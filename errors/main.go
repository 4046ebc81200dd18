package errors

import (
	"fmt"

	"github.com/merce-fra/snifftraffic/ui"
)

type TrafficError error

var (
	NotLoggedIn           TrafficError = fmt.Errorf("%s\nRun %s or export GITHUB_TOKEN with a token holding the repo scope.", ui.RedText("No GitHub token found."), ui.Bold("snifftraffic login"))
	TrafficFetchFailed    TrafficError = fmt.Errorf("%s\nGitHub only serves traffic data to users with push access.", ui.RedText("There was a problem fetching traffic data."))
	ReferrersFetchFailed  TrafficError = fmt.Errorf("%s\nGitHub only serves traffic data to users with push access.", ui.RedText("There was a problem fetching popular referrers."))
	OverviewFetchFailed   TrafficError = fmt.Errorf("%s", ui.RedText("There was a problem fetching the repository overview."))
	NoTrafficData         TrafficError = fmt.Errorf("%s\nRun %s to pull the first batch of traffic rows.", ui.RedText("No traffic data found."), ui.Bold("snifftraffic fetch"))
	NoDashboardFound      TrafficError = fmt.Errorf("%s\nRun %s to render it.", ui.RedText("No dashboard file found."), ui.Bold("snifftraffic dashboard"))
	LoginFailed           TrafficError = fmt.Errorf("%s", ui.RedText("Login failed"))
	DashboardRenderFailed TrafficError = fmt.Errorf("%s", ui.RedText("There was a problem rendering the dashboard."))
	LatestVersionUnknown  TrafficError = fmt.Errorf("%s", ui.RedText("Could not determine the latest released version."))
)
