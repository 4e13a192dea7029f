package pipeline

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/dmaia/cpidash/internal/source"
)

func datasetServer(t *testing.T, rows []source.RawRow) *httptest.Server {
	t.Helper()
	var buf bytes.Buffer
	if err := parquet.Write(&buf, rows); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func sampleRows() []source.RawRow {
	rows := make([]source.RawRow, 0, 12)
	for m := 1; m <= 6; m++ {
		rows = append(rows,
			source.RawRow{
				Date:         time.Date(2024, time.Month(m), 1, 0, 0, 0, 0, time.UTC),
				Division:     "07",
				State:        "São Paulo",
				InflationMoM: 0.1 * float64(m),
			},
			source.RawRow{
				Date:         time.Date(2024, time.Month(m), 1, 0, 0, 0, 0, time.UTC),
				Division:     "06",
				State:        "Bahia",
				InflationMoM: -0.05 * float64(m),
			})
	}
	return rows
}

func TestLoadDataset_EndToEnd(t *testing.T) {
	srv := datasetServer(t, sampleRows())

	st, err := loadDataset(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = st.Close() }()

	n, err := st.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 12 {
		t.Errorf("Count = %d, want 12", n)
	}

	series, err := st.Filter("07", "São Paulo", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 6 {
		t.Fatalf("series length = %d, want 6", len(series))
	}
	if series[0].Label != "Transport" {
		t.Errorf("Label = %q, want Transport", series[0].Label)
	}
}

func TestLoadDataset_RemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := loadDataset(context.Background(), srv.URL)
	if !errors.Is(err, source.ErrDataUnavailable) {
		t.Fatalf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestLoad_Memoized(t *testing.T) {
	// Load shares one sync.Once for the process; this test is the only one
	// allowed to exercise it.
	srv := datasetServer(t, sampleRows())

	first, err := Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second call must return the memoized store without re-fetching, even
	// with a different (dead) URL.
	second, err := Load(context.Background(), "http://127.0.0.1:0/never")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("Load returned a different store on the second call")
	}
}
