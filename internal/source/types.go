package source

import "time"

// RawRow mirrors one record of the remote parquet dataset.
// The date column is a parquet TIMESTAMP; the rest are plain columns.
type RawRow struct {
	Date         time.Time `parquet:"date,timestamp"`
	Division     string    `parquet:"division"`
	State        string    `parquet:"state"`
	InflationMoM float64   `parquet:"inflation_mom"`
}
