package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/njnx/polar-plant-eunjin-dashboard/internal/dataset"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/logging"
)

// WriteFrameCSV writes a frame as delimited text, header first.
func WriteFrameCSV(w io.Writer, frame *dataset.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(frame.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < frame.Len(); i++ {
		if err := cw.Write(frame.Row(i)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	logging.Export("csv export: %d row(s)", frame.Len())
	return nil
}
