package store

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"github.com/merce-fra/snifftraffic/entity"
)

var header = []string{"date", "clones", "clones_uniques", "views", "views_uniques"}

// Store persists daily traffic rows as a CSV file. Existing rows are
// never rewritten, fetches only append dates not yet on disk.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s *Store) Load() ([]entity.TrafficRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "open traffic csv")
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read traffic csv")
	}
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([]entity.TrafficRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row, err := parseRow(record)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Store) Save(rows []entity.TrafficRow) error {
	f, err := os.Create(s.path)
	if err != nil {
		return errors.Wrap(err, "create traffic csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Date,
			strconv.Itoa(row.Clones),
			strconv.Itoa(row.ClonesUniques),
			strconv.Itoa(row.Views),
			strconv.Itoa(row.ViewsUniques),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "write traffic csv")
}

// Merge appends to existing only the fetched rows whose date is not
// already present, returning the combined rows (date ascending) and
// the number of rows added
func Merge(existing, fetched []entity.TrafficRow) ([]entity.TrafficRow, int) {
	seen := make(map[string]bool, len(existing))
	for _, row := range existing {
		seen[row.Date] = true
	}

	merged := make([]entity.TrafficRow, len(existing))
	copy(merged, existing)

	added := 0
	for _, row := range fetched {
		if seen[row.Date] {
			continue
		}
		merged = append(merged, row)
		seen[row.Date] = true
		added++
	}

	sortRows(merged)
	return merged, added
}

// BuildRows outer-joins daily clone and view points on their date
func BuildRows(clones, views []*entity.TrafficPoint) []entity.TrafficRow {
	byDate := make(map[string]*entity.TrafficRow)

	for _, point := range clones {
		row := rowFor(byDate, point.Timestamp.Format("2006-01-02"))
		row.Clones = point.Count
		row.ClonesUniques = point.Uniques
	}
	for _, point := range views {
		row := rowFor(byDate, point.Timestamp.Format("2006-01-02"))
		row.Views = point.Count
		row.ViewsUniques = point.Uniques
	}

	rows := make([]entity.TrafficRow, 0, len(byDate))
	for _, row := range byDate {
		rows = append(rows, *row)
	}
	sortRows(rows)
	return rows
}

func rowFor(byDate map[string]*entity.TrafficRow, date string) *entity.TrafficRow {
	if row, ok := byDate[date]; ok {
		return row
	}
	row := &entity.TrafficRow{Date: date}
	byDate[date] = row
	return row
}

func sortRows(rows []entity.TrafficRow) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})
}

func parseRow(record []string) (entity.TrafficRow, error) {
	if len(record) != len(header) {
		return entity.TrafficRow{}, errors.Errorf("malformed traffic csv record: %v", record)
	}

	counts := make([]int, 4)
	for i, field := range record[1:] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return entity.TrafficRow{}, errors.Wrapf(err, "malformed count in traffic csv record %v", record)
		}
		counts[i] = n
	}

	return entity.TrafficRow{
		Date:          record[0],
		Clones:        counts[0],
		ClonesUniques: counts[1],
		Views:         counts[2],
		ViewsUniques:  counts[3],
	}, nil
}
