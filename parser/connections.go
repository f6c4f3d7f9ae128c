package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Columns names the fields of a connection record in file order
var Columns = [4]string{"Source IP", "Dest IP", "Source Port", "Dest Port"}

// ErrMalformedRecord is wrapped by every ParseError
var ErrMalformedRecord = errors.New("malformed connection record")

type (
	// Record is one observed TCP connection four-tuple. The fields are kept
	// exactly as they appear in the input and are never validated.
	Record struct {
		SourceIP   string
		DestIP     string
		SourcePort string
		DestPort   string
	}

	// Table is the ordered, immutable sequence of records loaded from an
	// input file. Row position doubles as the time index of a record.
	Table struct {
		records []Record
	}

	// ParseError reports a line that does not split into exactly four fields
	ParseError struct {
		Line   int
		Fields int
	}
)

// Fields returns the record values in column order
func (r Record) Fields() []string {
	return []string{r.SourceIP, r.DestIP, r.SourcePort, r.DestPort}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, saw %d", e.Line, len(Columns), e.Fields)
}

// Unwrap allows errors.Is(err, ErrMalformedRecord)
func (e *ParseError) Unwrap() error {
	return ErrMalformedRecord
}

// NewTable copies the given records into a new Table
func NewTable(records []Record) *Table {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Table{records: cp}
}

// Len returns the number of records in the table
func (t *Table) Len() int {
	return len(t.records)
}

// Record returns the record at row i
func (t *Table) Record(i int) Record {
	return t.records[i]
}

// Records returns a copy of the records in file order
func (t *Table) Records() []Record {
	cp := make([]Record, len(t.records))
	copy(cp, t.records)
	return cp
}

// Index returns the time axis of the table: the ordinal position of each
// record (0, 1, ... N-1). There is no timestamp column in the input, so
// the row number stands in for elapsed time.
func (t *Table) Index() []float64 {
	idx := make([]float64, len(t.records))
	for i := range idx {
		idx[i] = float64(i)
	}
	return idx
}

// Read parses whitespace delimited connection records from r. Blank lines
// are skipped; any other line must hold exactly four fields. No table is
// returned if a line is malformed.
func Read(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []Record
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != len(Columns) {
			return nil, &ParseError{Line: lineNum, Fields: len(fields)}
		}
		records = append(records, Record{
			SourceIP:   fields[0],
			DestIP:     fields[1],
			SourcePort: fields[2],
			DestPort:   fields[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Table{records: records}, nil
}
