package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/suvat/internal/motion"
)

type ExportData struct {
	Run       RunMetadata `json:"run"`
	Times     []float64   `json:"times"`
	Distances []float64   `json:"distances"`
	Speeds    []float64   `json:"speeds"`
}

// ExportJSON writes a run's metadata and series as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, result *motion.Result) error {
	data := ExportData{
		Run:       *meta,
		Times:     result.Times(),
		Distances: result.Distances(),
		Speeds:    result.Speeds(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV writes samples as time,distance,speed rows with a header.
func WriteCSV(w io.Writer, samples []motion.Sample) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(samplesHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.T.Value(), 'g', -1, 64),
			strconv.FormatFloat(s.S.Value(), 'g', -1, 64),
			strconv.FormatFloat(s.V.Value(), 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
