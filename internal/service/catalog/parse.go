package catalog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"strconv"
	"strings"

	"github.com/heartmarshall/coursereg-backend/internal/adapter/spreadsheet"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

// Accepted upload media types.
const (
	MediaCSV         = "text/csv"
	MediaJSON        = "application/json"
	MediaOctetStream = "application/octet-stream"
	MediaXLS         = "application/vnd.ms-excel"
	MediaXLSX        = spreadsheet.ContentType
)

// Header aliases, lowercased, in lookup priority order.
var (
	codeHeaders    = []string{"course code", "code", "coursecode"}
	nameHeaders    = []string{"course name", "name", "coursename"}
	creditsHeaders = []string{"credits", "credit"}
	groupHeaders   = []string{"group"}
)

// ParseCatalog decodes an uploaded catalog according to its media type.
// Rows without a code or name, or with non-numeric credits, are skipped.
// Unknown media types yield domain.ErrUnsupportedMedia.
func ParseCatalog(contentType string, body []byte) ([]domain.Course, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("content type %q: %w", contentType, domain.ErrUnsupportedMedia)
	}

	var records []map[string]string
	switch mediaType {
	case MediaCSV:
		records, err = readCSV(body)
	case MediaXLSX, MediaXLS:
		records, err = spreadsheet.ReadRecords(bytes.NewReader(body))
	case MediaJSON:
		records, err = readJSON(body)
	case MediaOctetStream:
		records, err = spreadsheet.ReadRecords(bytes.NewReader(body))
		if err != nil {
			records, err = readCSV(body)
		}
	default:
		return nil, fmt.Errorf("content type %q: %w", mediaType, domain.ErrUnsupportedMedia)
	}
	if err != nil {
		if errors.Is(err, spreadsheet.ErrEmptyWorkbook) {
			return nil, domain.NewValidationError("file", "no rows parsed")
		}
		return nil, domain.NewValidationError("file", err.Error())
	}

	courses := make([]domain.Course, 0, len(records))
	for _, rec := range records {
		if c, ok := recordToCourse(rec); ok {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func recordToCourse(rec map[string]string) (domain.Course, bool) {
	code := strings.TrimSpace(lookup(rec, codeHeaders))
	name := strings.TrimSpace(lookup(rec, nameHeaders))
	if code == "" || name == "" {
		return domain.Course{}, false
	}

	credits := 0.0
	if raw := strings.TrimSpace(lookup(rec, creditsHeaders)); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Course{}, false
		}
		credits = v
	}

	return domain.Course{
		CourseCode: code,
		CourseName: name,
		Credits:    credits,
		Group:      strings.TrimSpace(lookup(rec, groupHeaders)),
		L:          domain.ParseHoursString(rec["l"]),
		T:          domain.ParseHoursString(rec["t"]),
		P:          domain.ParseHoursString(rec["p"]),
		J:          domain.ParseHoursString(rec["j"]),
	}, true
}

func lookup(rec map[string]string, keys []string) string {
	for _, k := range keys {
		if v := rec[k]; strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// readCSV reads a header row followed by data rows. Header names are
// lowercased; rows with fewer than three cells are ignored.
func readCSV(body []byte) ([]map[string]string, error) {
	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, spreadsheet.ErrEmptyWorkbook
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}

	var records []map[string]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if len(row) < 3 {
			continue
		}
		rec := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(row) {
				rec[h] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// readJSON reads an array of objects. Keys are lowercased and scalar values
// rendered as strings so JSON rows follow the same rules as sheet rows.
func readJSON(body []byte) ([]map[string]string, error) {
	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, errors.New("body must be a JSON array of objects")
	}

	records := make([]map[string]string, 0, len(items))
	for _, item := range items {
		rec := make(map[string]string, len(item))
		for k, v := range item {
			switch t := v.(type) {
			case string:
				rec[strings.ToLower(k)] = t
			case float64:
				rec[strings.ToLower(k)] = strconv.FormatFloat(t, 'f', -1, 64)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
