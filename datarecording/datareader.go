package datarecording

import (
	"database/sql"
	"fmt"
	"reflect"
	"strings"

	"github.com/fatih/structs"
)

// QueryParams narrows and pages a table query.
type QueryParams struct {
	// Where is a WHERE clause without the keyword, e.g. "RunID = ?".
	Where string

	// Args fills the placeholders in Where.
	Args []any

	// OrderBy is an ORDER BY clause without the keywords.
	OrderBy string

	// Limit caps the number of rows returned; 0 means no cap.
	Limit int

	// Offset skips rows for pagination.
	Offset int
}

// DataReader reads back tables written by a DataRecorder.
type DataReader interface {
	// MapTable associates a table with the struct type its rows decode
	// into. A table must be mapped before it can be queried.
	MapTable(tableName string, sampleEntry any)

	// ListTables returns the names of all mapped tables.
	ListTables() []string

	// Query returns the decoded rows of one table together with the total
	// row count matching the WHERE clause, ignoring pagination.
	Query(tableName string, params QueryParams) ([]any, int, error)

	// Close releases the underlying database connection.
	Close() error
}

// NewReader opens a DataReader on an existing database file.
func NewReader(filename string) (DataReader, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, err
	}

	return NewReaderWithDB(db), nil
}

// NewReaderWithDB creates a DataReader on an already-open database.
func NewReaderWithDB(db *sql.DB) DataReader {
	return &sqliteReader{
		db:      db,
		typeMap: make(map[string]reflect.Type),
	}
}

type sqliteReader struct {
	db *sql.DB

	typeMap map[string]reflect.Type
}

func (r *sqliteReader) MapTable(tableName string, sampleEntry any) {
	r.typeMap[tableName] = reflect.TypeOf(sampleEntry)
}

func (r *sqliteReader) ListTables() []string {
	names := make([]string, 0, len(r.typeMap))
	for name := range r.typeMap {
		names = append(names, name)
	}

	return names
}

func (r *sqliteReader) Close() error {
	return r.db.Close()
}

func (r *sqliteReader) Query(
	tableName string,
	params QueryParams,
) ([]any, int, error) {
	structType, mapped := r.typeMap[tableName]
	if !mapped {
		return nil, 0, fmt.Errorf("table %s is not mapped", tableName)
	}

	total, err := r.countRows(tableName, params)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + columnList(structType) + " FROM " + tableName
	if params.Where != "" {
		query += " WHERE " + params.Where
	}
	if params.OrderBy != "" {
		query += " ORDER BY " + params.OrderBy
	}
	if params.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", params.Limit, params.Offset)
	}

	rows, err := r.db.Query(query, params.Args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var results []any

	for rows.Next() {
		entry := reflect.New(structType).Elem()

		dest := make([]any, structType.NumField())
		for i := range dest {
			dest[i] = entry.Field(i).Addr().Interface()
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, 0, err
		}

		results = append(results, entry.Interface())
	}

	return results, total, rows.Err()
}

func (r *sqliteReader) countRows(
	tableName string,
	params QueryParams,
) (int, error) {
	query := "SELECT COUNT(*) FROM " + tableName
	if params.Where != "" {
		query += " WHERE " + params.Where
	}

	var count int
	err := r.db.QueryRow(query, params.Args...).Scan(&count)

	return count, err
}

func columnList(structType reflect.Type) string {
	sample := reflect.New(structType).Elem().Interface()
	return strings.Join(structs.Names(sample), ", ")
}
