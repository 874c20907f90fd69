package attendance

import (
	"encoding/csv"
	"os"
	"time"
)

const (
	StatusPresent = "Present"

	DateFormat = "2006-01-02"
	TimeFormat = "15:04:05"
)

var csvHeader = []string{"Date", "Time", "Student Name", "Status"}

// Log is the append-only CSV attendance record and the source of truth.
// It is re-read in full on startup and on every day rollover.
type Log struct {
	Path string
}

// EnsureExists creates the CSV with its header row when the file is missing.
func (l *Log) EnsureExists() error {
	if _, err := os.Stat(l.Path); err == nil {
		return nil
	}
	f, err := os.Create(l.Path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	err = w.Write(csvHeader)
	w.Flush()
	if err == nil {
		err = w.Error()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (l *Log) Exists() bool {
	_, err := os.Stat(l.Path)
	return err == nil
}

// Append records one Present row with the first-sighting timestamp.
func (l *Log) Append(now time.Time, name string) error {
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	err = w.Write([]string{now.Format(DateFormat), now.Format(TimeFormat), name, StatusPresent})
	w.Flush()
	if err == nil {
		err = w.Error()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// PresentOn scans the whole log and returns everyone recorded Present on the
// given date. A missing file just means nobody was recorded yet.
func (l *Log) PresentOn(date string) (map[string]bool, error) {
	present := map[string]bool{}
	f, err := os.Open(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return present, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if i == 0 || len(row) < 4 {
			continue
		}
		if row[0] == date && row[3] == StatusPresent {
			present[row[2]] = true
		}
	}
	return present, nil
}
