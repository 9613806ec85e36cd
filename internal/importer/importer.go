// Package importer ingests student and word lists uploaded by the admin.
// Both CSV and Excel files are accepted; rows that fail validation are
// skipped and reported individually instead of aborting the batch.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/muratdeveli03/kelime-uygulama/internal/database"
	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

// Result holds the outcome of an import operation
type Result struct {
	TotalProcessed int      `json:"total_processed"`
	Added          int      `json:"added"`
	Updated        int      `json:"updated"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors"`
}

// Importer runs admin batch uploads against the repositories
type Importer struct {
	students *database.StudentRepository
	words    *database.WordRepository
}

// New creates a new importer instance
func New() *Importer {
	return &Importer{
		students: database.NewStudentRepository(),
		words:    database.NewWordRepository(),
	}
}

// ImportStudents upserts students from rows of "code,name,class". Existing
// codes are updated with the row's name and class level.
func (im *Importer) ImportStudents(r io.Reader, filename string) (*Result, error) {
	rows, err := readRows(r, filename)
	if err != nil {
		return nil, err
	}

	result := &Result{Errors: make([]string, 0)}
	for i, row := range rows {
		result.TotalProcessed++
		if err := im.processStudentRow(row, result); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}
	return result, nil
}

// ImportWords upserts words from rows of "class,english,turkish" where the
// turkish field holds semicolon-separated meanings. Re-importing an existing
// (english, class) pair replaces its meanings.
func (im *Importer) ImportWords(r io.Reader, filename string) (*Result, error) {
	rows, err := readRows(r, filename)
	if err != nil {
		return nil, err
	}

	result := &Result{Errors: make([]string, 0)}
	for i, row := range rows {
		result.TotalProcessed++
		if err := im.processWordRow(row, result); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}
	return result, nil
}

func (im *Importer) processStudentRow(row []string, result *Result) error {
	if len(row) != 3 {
		return fmt.Errorf("expected 3 fields, got %d", len(row))
	}
	code := strings.TrimSpace(row[0])
	name := strings.TrimSpace(row[1])
	class := strings.TrimSpace(row[2])

	if code == "" || name == "" {
		return fmt.Errorf("code and name cannot be empty")
	}
	classLevel, err := strconv.Atoi(class)
	if err != nil {
		return fmt.Errorf("class level %q is not a number", class)
	}

	created, err := im.students.Upsert(&models.Student{
		Code:       code,
		Name:       name,
		ClassLevel: classLevel,
	})
	if err != nil {
		return err
	}
	if created {
		result.Added++
	} else {
		result.Updated++
	}
	return nil
}

func (im *Importer) processWordRow(row []string, result *Result) error {
	if len(row) != 3 {
		return fmt.Errorf("expected 3 fields, got %d", len(row))
	}
	class := strings.TrimSpace(row[0])
	english := strings.TrimSpace(row[1])
	turkish := strings.TrimSpace(row[2])

	if english == "" {
		return fmt.Errorf("english term cannot be empty")
	}
	classLevel, err := strconv.Atoi(class)
	if err != nil {
		return fmt.Errorf("class level %q is not a number", class)
	}

	var meanings models.MeaningList
	for _, part := range strings.Split(turkish, ";") {
		if m := strings.TrimSpace(part); m != "" {
			meanings = append(meanings, m)
		}
	}
	if len(meanings) == 0 {
		return fmt.Errorf("at least one turkish meaning is required")
	}

	created, err := im.words.Upsert(&models.Word{
		English:         english,
		ClassLevel:      classLevel,
		TurkishMeanings: meanings,
	})
	if err != nil {
		return err
	}
	if created {
		result.Added++
	} else {
		result.Updated++
	}
	return nil
}

// readRows loads all rows from a CSV or Excel upload, chosen by extension.
// An unreadable file is a hard failure; row-level problems are handled by
// the caller.
func readRows(r io.Reader, filename string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".xlsx" || ext == ".xlsm" {
		return readExcelRows(r)
	}
	return readCSVRows(r)
}

func readCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unreadable CSV: %v: %w", err, models.ErrInvalidInput)
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readExcelRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("unreadable Excel file: %v: %w", err, models.ErrInvalidInput)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets: %w", models.ErrInvalidInput)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	var out [][]string
	for _, row := range rows {
		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out, nil
}
