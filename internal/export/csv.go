// Package export writes a result table as the clinical goals CSV.
//
// The format is fixed by downstream consumers: ", " separators, a header
// terminated by "\n", data rows terminated by "\r\n", two-decimal numbers and
// TRUE/FALSE verdicts. Fields are written verbatim, unquoted.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/goalaudit/internal/domain"
)

// Header is the first line of every export, without its terminator.
const Header = "Plan Name, ROI Name, Goal Criteria, Acceptance Level, Parameter Value, Clinical Goal Value, Goal Achieved"

const (
	headerTerminator = "\n"
	rowTerminator    = "\r\n"
)

// FormatRow renders one data row without its terminator.
func FormatRow(r domain.NormalizedRow) string {
	return fmt.Sprintf("%s, %s, %s, %.2f, %.2f, %.2f, %s",
		r.PlanName, r.RegionName, r.Criteria,
		r.AcceptanceLevel, r.ParameterLimit, r.AchievedValue,
		FormatAchieved(r.Achieved))
}

// FormatAchieved renders a verdict as TRUE or FALSE.
func FormatAchieved(ok bool) string {
	if ok {
		return "TRUE"
	}
	return "FALSE"
}

// Write streams the header and every row of table to w.
func Write(w io.Writer, table *domain.ResultTable) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + headerTerminator); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range table.Rows {
		if _, err := bw.WriteString(FormatRow(r) + rowTerminator); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing export: %w", err)
	}
	return nil
}

// WriteFile writes table to path atomically: the content goes to a temporary
// file in the same directory which is renamed over path only after it has
// been fully written and synced. On any failure the temporary file is
// removed and an existing file at path is left untouched.
func WriteFile(path string, table *domain.ResultTable) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary export file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = Write(tmp, table); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing export file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting export file mode: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("committing export file: %w", err)
	}
	return nil
}

// FileName returns the export file name for a patient on a given day. One
// export per patient per day: a second run the same day replaces the first.
// Path separators in the patient ID become underscores.
func FileName(patientID string, now time.Time) string {
	return fmt.Sprintf("clinical_goals_export_%s_%s.csv", pathSafe.Replace(patientID), now.Format("020106"))
}

var pathSafe = strings.NewReplacer("/", "_", `\`, "_")

// Path joins dir and FileName.
func Path(dir, patientID string, now time.Time) string {
	return filepath.Join(dir, FileName(patientID, now))
}
