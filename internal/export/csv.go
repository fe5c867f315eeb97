package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Timestamp renders a locale-independent timestamp for CSV cells.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

// Write serializes header and rows as CSV. encoding/csv applies RFC 4180
// quoting, so values containing commas, quotes or newlines survive intact.
// Zero rows still produce the header line.
func Write(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHTTP sends the CSV as a downloadable attachment.
func WriteHTTP(w http.ResponseWriter, filename string, header []string, rows [][]string) error {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return Write(w, header, rows)
}
