// Package csvexport writes drag sweep rows as CSV.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

var header = []string{
	"Drag (kg/s)",
	"Distance (m)",
	"Flight time (s)",
	"Converged",
	"Iterations",
	"Stop",
}

// Write renders points to w, one row per drag coefficient.
func Write(w io.Writer, points []domain.SweepPoint) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	for _, p := range points {
		err := csvWriter.Write([]string{
			strconv.FormatFloat(p.DragCoefficient, 'g', -1, 64),
			fmt.Sprintf("%0.4f", p.Result.Distance),
			fmt.Sprintf("%0.4f", p.Result.FlightTime),
			strconv.FormatBool(p.Result.Converged),
			strconv.Itoa(p.Result.Iterations),
			string(p.Result.Stop),
		})
		if err != nil {
			return fmt.Errorf("could not write line: %w", err)
		}
	}

	csvWriter.Flush()

	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("could not flush csv: %w", err)
	}
	return nil
}

// SaveFile writes points to path, creating parent directories.
func SaveFile(path string, points []domain.SweepPoint) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &domain.OpError{Op: "csvexport.save", Kind: domain.KindExecution, Path: path, Err: err}
	}

	file, err := os.Create(path)
	if err != nil {
		return &domain.OpError{Op: "csvexport.save", Kind: domain.KindExecution, Path: path, Err: err}
	}

	if err := Write(file, points); err != nil {
		_ = file.Close()
		return &domain.OpError{Op: "csvexport.save", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &domain.OpError{Op: "csvexport.save", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return nil
}
