package entity

import "time"

// TrafficPoint is one day of clone or view counts as reported by GitHub
type TrafficPoint struct {
	Timestamp time.Time
	Count     int
	Uniques   int
}

// TrafficRow is one merged day in traffic_data.csv.
// Date uses YYYY-MM-DD so lexicographic order is chronological order.
type TrafficRow struct {
	Date          string `json:"date"`
	Clones        int    `json:"clones"`
	ClonesUniques int    `json:"clones_uniques"`
	Views         int    `json:"views"`
	ViewsUniques  int    `json:"views_uniques"`
}

type Referrer struct {
	Referrer string `json:"referrer"`
	Count    int    `json:"count"`
	Uniques  int    `json:"uniques"`
}

type TrafficRequest struct {
	Owner string
	Repo  string
}

type FetchResult struct {
	Rows      []TrafficRow
	Added     int
	Created   bool
	Referrers []*Referrer
}

type RepoOverview struct {
	NameWithOwner string
	Description   string
	HomepageURL   string
	Stars         int
	Forks         int
}

type DashboardData struct {
	Owner     string
	Repo      string
	UpdatedAt string
	Rows      []TrafficRow
	Referrers []*Referrer
	Overview  *RepoOverview
}
