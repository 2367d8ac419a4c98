package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/usecase"
)

var importColumns = []string{"name", "registrationNumber", "branch", "section", "year", "mobileNumber", "teamId"}

// parseImportCSV reads player rows. Columns are matched by header name, so
// their order is free; name and registrationNumber are required.
func parseImportCSV(r io.Reader) ([]usecase.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: import file is empty", usecase.ErrInvalidInput)
		}
		return nil, fmt.Errorf("read import header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range importColumns[:2] {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: import header is missing %q", usecase.ErrInvalidInput, required)
		}
	}

	var rows []usecase.ImportRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read import file: %w", err)
		}
		line, _ := reader.FieldPos(0)

		field := func(column string) string {
			i, ok := index[column]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		if strings.Join(record, "") == "" {
			continue
		}

		in := player.Input{
			Name:               field("name"),
			RegistrationNumber: field("registrationNumber"),
			Branch:             field("branch"),
			Section:            field("section"),
			Year:               field("year"),
			MobileNumber:       field("mobileNumber"),
		}
		if raw := field("teamId"); raw != "" {
			teamID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: invalid teamId %q", usecase.ErrInvalidInput, line, raw)
			}
			in.TeamID = &teamID
		}
		rows = append(rows, usecase.ImportRow{Line: line, Input: in})
	}
	return rows, nil
}
