package constants

// Version is stamped at build time via ldflags
var Version = "source"

const (
	// Default repository whose traffic gets sniffed
	DefaultOwner = "merce-fra"
	DefaultRepo  = "PELCA"

	// DefaultSniffer is the external traffic program run by `deploy`
	DefaultSniffer = "snifftraffic.py"

	// DefaultOutput is the rendered dashboard file
	DefaultOutput = "main.html"

	// CSVFile holds the accumulated daily traffic rows
	CSVFile = "traffic_data.csv"
)

const HeaderImageURL = "https://github.com/merce-fra/PELCA/raw/Release_PELCA_v1.3/Images/first_image.png"

var GithubURLMap = map[string]string{
	"repo":     "https://github.com/%s/%s",
	"traffic":  "https://github.com/%s/%s/graphs/traffic",
	"releases": "https://github.com/%s/%s/releases",
	"tokens":   "https://github.com/settings/tokens",
}
