package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes brands as CSV with a fixed header row, in input order.
func WriteCSV(w io.Writer, brands []Brand) error {
	cw := csv.NewWriter(w)

	header := []string{"Name", "Category", "Email", "Website", "Price Range", "Style", "Headquarters", "Founded", "Specialty"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, b := range brands {
		record := []string{
			b.Name,
			b.Category,
			b.Email,
			b.Website,
			b.PriceRange,
			b.Style,
			b.Headquarters,
			strconv.Itoa(b.Founded),
			b.Specialty,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
