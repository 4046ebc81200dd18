package store_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/merce-fra/snifftraffic/entity"
	"github.com/merce-fra/snifftraffic/store"
)

func day(t *testing.T, date string) time.Time {
	ts, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return ts
}

func TestBuildRowsJoinsOnDate(t *testing.T) {
	clones := []*entity.TrafficPoint{
		{Timestamp: day(t, "2024-05-02"), Count: 4, Uniques: 2},
		{Timestamp: day(t, "2024-05-01"), Count: 7, Uniques: 3},
	}
	views := []*entity.TrafficPoint{
		{Timestamp: day(t, "2024-05-01"), Count: 40, Uniques: 11},
		{Timestamp: day(t, "2024-05-03"), Count: 9, Uniques: 5},
	}

	rows := store.BuildRows(clones, views)

	require.Equal(t, []entity.TrafficRow{
		{Date: "2024-05-01", Clones: 7, ClonesUniques: 3, Views: 40, ViewsUniques: 11},
		{Date: "2024-05-02", Clones: 4, ClonesUniques: 2},
		{Date: "2024-05-03", Views: 9, ViewsUniques: 5},
	}, rows)
}

func TestMergeAppendsOnlyNewDates(t *testing.T) {
	existing := []entity.TrafficRow{
		{Date: "2024-05-01", Clones: 7, ClonesUniques: 3, Views: 40, ViewsUniques: 11},
		{Date: "2024-05-02", Clones: 4, ClonesUniques: 2},
	}
	fetched := []entity.TrafficRow{
		// Same date with fresh numbers must never overwrite history
		{Date: "2024-05-02", Clones: 99, ClonesUniques: 99},
		{Date: "2024-05-03", Views: 9, ViewsUniques: 5},
	}

	merged, added := store.Merge(existing, fetched)

	require.Equal(t, 1, added)
	require.Equal(t, []entity.TrafficRow{
		{Date: "2024-05-01", Clones: 7, ClonesUniques: 3, Views: 40, ViewsUniques: 11},
		{Date: "2024-05-02", Clones: 4, ClonesUniques: 2},
		{Date: "2024-05-03", Views: 9, ViewsUniques: 5},
	}, merged)
}

func TestMergeIntoEmpty(t *testing.T) {
	fetched := []entity.TrafficRow{
		{Date: "2024-05-02", Clones: 4},
		{Date: "2024-05-01", Clones: 7},
	}

	merged, added := store.Merge(nil, fetched)

	require.Equal(t, 2, added)
	require.Equal(t, "2024-05-01", merged[0].Date)
	require.Equal(t, "2024-05-02", merged[1].Date)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "snifftraffic")
	require.NoError(t, err)

	s := store.New(filepath.Join(dir, "traffic_data.csv"))
	require.False(t, s.Exists())

	rows := []entity.TrafficRow{
		{Date: "2024-05-01", Clones: 7, ClonesUniques: 3, Views: 40, ViewsUniques: 11},
		{Date: "2024-05-02", Clones: 4, ClonesUniques: 2, Views: 0, ViewsUniques: 0},
	}
	require.NoError(t, s.Save(rows))
	require.True(t, s.Exists())

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, rows, loaded)
}

func TestLoadRejectsMalformedCounts(t *testing.T) {
	dir, err := ioutil.TempDir("", "snifftraffic")
	require.NoError(t, err)

	path := filepath.Join(dir, "traffic_data.csv")
	csv := "date,clones,clones_uniques,views,views_uniques\n2024-05-01,seven,3,40,11\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(csv), 0644))

	_, err = store.New(path).Load()
	require.Error(t, err)
}
