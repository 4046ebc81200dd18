package dashboard_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merce-fra/snifftraffic/dashboard"
	"github.com/merce-fra/snifftraffic/entity"
)

func TestRender(t *testing.T) {
	data := &entity.DashboardData{
		Owner:     "merce-fra",
		Repo:      "PELCA",
		UpdatedAt: "2024-05-03 10:20:30",
		Rows: []entity.TrafficRow{
			{Date: "2024-05-01", Clones: 7, ClonesUniques: 3, Views: 40, ViewsUniques: 11},
			{Date: "2024-05-02", Clones: 4, ClonesUniques: 2, Views: 12, ViewsUniques: 6},
		},
		Referrers: []*entity.Referrer{
			{Referrer: "news.ycombinator.com", Count: 120, Uniques: 80},
		},
		Overview: &entity.RepoOverview{
			NameWithOwner: "merce-fra/PELCA",
			Description:   "Power Electronics Life Cycle Assessment",
			Stars:         42,
			Forks:         7,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, dashboard.Render(&buf, data))

	html := buf.String()
	require.Contains(t, html, "Dashboard merce-fra/PELCA")
	require.Contains(t, html, "<strong>2024-05-03 10:20:30</strong>")
	require.Contains(t, html, "news.ycombinator.com")
	require.Contains(t, html, "Power Electronics Life Cycle Assessment")
	require.Contains(t, html, `"dates":["2024-05-01","2024-05-02"]`)
	require.Contains(t, html, `"clones":[7,4]`)
	require.Contains(t, html, "cdn.plot.ly")
}

func TestRenderWithoutOverview(t *testing.T) {
	data := &entity.DashboardData{
		Owner:     "merce-fra",
		Repo:      "PELCA",
		UpdatedAt: "2024-05-03 10:20:30",
	}

	var buf bytes.Buffer
	require.NoError(t, dashboard.Render(&buf, data))
	require.NotContains(t, buf.String(), "⭐")
}
