// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ducklytics/event-checkin/models"
)

// RequiredColumns is the exact roster header contract, order-independent.
// Files with missing, extra or duplicate columns are rejected whole.
var RequiredColumns = []string{
	"participant_id",
	"start_time",
	"bib_no",
	"id_card_passport",
	"last_name",
	"first_name",
	"tshirt_size",
	"birthday_year",
	"nationality",
	"phone",
	"email",
	"emergency_contact_name",
	"emergency_contact_phone",
	"blood_type",
	"medical_information",
	"medicines_using",
	"parent_full_name",
	"parent_date_of_birth",
	"parent_email",
	"parent_id_card_passport",
	"parent_relationship",
	"full_name",
	"name_on_bib",
}

// Parse reads a roster file into participant records. Validation is
// all-or-nothing: a bad extension, a header that deviates from
// RequiredColumns, or a data row with a different column count fails the
// whole file before anything is handed to the store.
func Parse(filename string, data []byte) ([]models.ParticipantRecord, error) {
	var rows [][]string
	var err error

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		rows, err = readCSV(data)
	case ".xlsx":
		rows, err = readXLSX(data)
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .csv or .xlsx", ext)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("roster file is empty")
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]models.ParticipantRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, mapRecord(row, index))
	}

	return records, nil
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	// The zero FieldsPerRecord pins every row to the header's column count,
	// so a mismatched row fails the whole file here.
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	return rows, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid XLSX: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("invalid XLSX: %w", err)
	}
	if len(rows) == 0 {
		return rows, nil
	}

	// Trailing blank cells are not representable in xlsx, so short rows are
	// padded to the header width; rows wider than the header are a real
	// column-count mismatch.
	width := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) > width {
			return nil, fmt.Errorf("invalid XLSX: row %d has %d columns, header has %d", i+2, len(row), width)
		}
		for len(rows[i+1]) < width {
			rows[i+1] = append(rows[i+1], "")
		}
	}

	return rows, nil
}

// headerIndex validates the header against RequiredColumns and returns a
// column name -> position map.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, col := range header {
		name := strings.TrimSpace(col)
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	if len(index) > len(RequiredColumns) {
		var extra []string
		required := make(map[string]bool, len(RequiredColumns))
		for _, col := range RequiredColumns {
			required[col] = true
		}
		for name := range index {
			if !required[name] {
				extra = append(extra, name)
			}
		}
		return nil, fmt.Errorf("unexpected columns: %s", strings.Join(extra, ", "))
	}

	return index, nil
}

func mapRecord(row []string, index map[string]int) models.ParticipantRecord {
	cell := func(col string) string {
		return strings.TrimSpace(row[index[col]])
	}

	rec := models.ParticipantRecord{
		ParticipantID:         cell("participant_id"),
		StartTime:             cell("start_time"),
		BibNo:                 cell("bib_no"),
		IDCardPassport:        cell("id_card_passport"),
		LastName:              cell("last_name"),
		FirstName:             cell("first_name"),
		TshirtSize:            cell("tshirt_size"),
		BirthdayYear:          cell("birthday_year"),
		Nationality:           cell("nationality"),
		Phone:                 cell("phone"),
		Email:                 cell("email"),
		EmergencyContactName:  cell("emergency_contact_name"),
		EmergencyContactPhone: cell("emergency_contact_phone"),
		BloodType:             cell("blood_type"),
		MedicalInformation:    cell("medical_information"),
		MedicinesUsing:        cell("medicines_using"),
		ParentFullName:        cell("parent_full_name"),
		ParentDateOfBirth:     cell("parent_date_of_birth"),
		ParentEmail:           cell("parent_email"),
		ParentIDCardPassport:  cell("parent_id_card_passport"),
		ParentRelationship:    cell("parent_relationship"),
		FullName:              cell("full_name"),
		NameOnBib:             cell("name_on_bib"),
	}

	// Blank display names default to "{first} {last}".
	if rec.FullName == "" {
		rec.FullName = strings.TrimSpace(rec.FirstName + " " + rec.LastName)
	}
	if rec.NameOnBib == "" {
		rec.NameOnBib = strings.TrimSpace(rec.FirstName + " " + rec.LastName)
	}

	return rec
}
