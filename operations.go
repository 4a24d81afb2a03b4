package lifeassist

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Params carries the caller-supplied keyword parameters of a table
// operation. Values come straight from flag parsing or from the assistant's
// function-call arguments, so every accessor validates the dynamic type.
type Params map[string]any

func (p Params) str(key string) (string, error) {
	s, ok, err := p.optStr(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("missing parameter %q", key)
	}
	return s, nil
}

func (p Params) optStr(key string) (string, bool, error) {
	v, ok := p[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("parameter %q is not a string but %T", key, v)
	}
	return s, true, nil
}

// optInt accepts int and float64: numbers decoded from JSON arrive as
// float64.
func (p Params) optInt(key string) (int, bool, error) {
	v, ok := p[key]
	if !ok {
		return 0, false, nil
	}
	switch n := v.(type) {
	case int:
		return n, true, nil
	case float64:
		return int(n), true, nil
	default:
		return 0, false, fmt.Errorf("parameter %q is not a number but %T", key, v)
	}
}

func (p Params) optBool(key string) (bool, error) {
	v, ok := p[key]
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("parameter %q is not a boolean but %T", key, v)
	}
	return b, nil
}

// Result is what an operation produces: a derived table, a scalar text, or
// nothing worth rendering.
type Result struct {
	Table *Table
	Text  string
}

// An Operation is one entry of the query registry. The registry is closed:
// callers name operations, but there is deliberately no way to reach
// anything outside this list.
type Operation struct {
	Name string
	Doc  string
	Run  func(*Table, Params) (Result, error)
}

var operations = []Operation{
	{Name: "filter", Doc: "keep rows whose column equals or contains a value", Run: opFilter},
	{Name: "filter_sum", Doc: "filter rows, then sum a numeric column (amount by default)", Run: opFilterSum},
	{Name: "sum", Doc: "sum a numeric column (amount by default)", Run: opSum},
	{Name: "count", Doc: "count the rows", Run: opCount},
	{Name: "group_sum", Doc: "group rows by a column and sum another per group", Run: opGroupSum},
	{Name: "sort", Doc: "sort rows by a column, numerically when the cells are numbers", Run: opSort},
	{Name: "head", Doc: "keep the first n rows (5 by default)", Run: opHead},
	{Name: "tail", Doc: "keep the last n rows (5 by default)", Run: opTail},
	{Name: "jsonpath", Doc: "evaluate a JSONPath expression against the rows as JSON objects", Run: opJSONPath},
}

// LookupOperation finds a registry entry by name.
func LookupOperation(name string) (Operation, error) {
	for _, op := range operations {
		if op.Name == name {
			return op, nil
		}
	}
	return Operation{}, fmt.Errorf("unknown operation %q, valid operations are: %s", name, OperationNames())
}

// Operations returns a copy of the registry, for documentation and listings.
func Operations() []Operation { return append([]Operation(nil), operations...) }

// OperationNames lists the registry names, comma separated.
func OperationNames() string {
	names := make([]string, 0, len(operations))
	for _, op := range operations {
		names = append(names, op.Name)
	}
	return strings.Join(names, ", ")
}

// filterRows applies the filter parameters: "column" (description by
// default) with "equals" and/or "contains". The historical shorthand
// "description_contains" the assistant was taught still works.
func filterRows(t *Table, p Params) ([][]string, error) {
	column := "description"
	equals, hasEquals, err := p.optStr("equals")
	if err != nil {
		return nil, err
	}
	contains, hasContains, err := p.optStr("contains")
	if err != nil {
		return nil, err
	}
	if c, ok, err := p.optStr("column"); err != nil {
		return nil, err
	} else if ok {
		column = c
	}
	if s, ok, err := p.optStr("description_contains"); err != nil {
		return nil, err
	} else if ok {
		column, contains, hasContains = "description", s, true
	}
	if !hasEquals && !hasContains {
		return nil, fmt.Errorf(`filtering needs an "equals" or "contains" parameter`)
	}

	idx, err := t.column(column)
	if err != nil {
		return nil, err
	}
	var rows [][]string
	for _, row := range t.Rows {
		cell := row[idx]
		if hasEquals && cell != equals {
			continue
		}
		if hasContains && !strings.Contains(cell, contains) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// sumColumn adds up the named column over the given rows.
func sumColumn(t *Table, rows [][]string, p Params) (decimal.Decimal, error) {
	column := "amount"
	if c, ok, err := p.optStr("sum_column"); err != nil {
		return decimal.Decimal{}, err
	} else if ok {
		column = c
	}
	idx, err := t.column(column)
	if err != nil {
		return decimal.Decimal{}, err
	}
	var total decimal.Decimal
	for _, row := range rows {
		v, err := decimal.NewFromString(row[idx])
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("cell %q in column %q is not a number: %w", row[idx], column, err)
		}
		total = total.Add(v)
	}
	return total, nil
}

func opFilter(t *Table, p Params) (Result, error) {
	rows, err := filterRows(t, p)
	if err != nil {
		return Result{}, err
	}
	return Result{Table: &Table{Columns: t.Columns, Rows: rows}}, nil
}

func opFilterSum(t *Table, p Params) (Result, error) {
	rows, err := filterRows(t, p)
	if err != nil {
		return Result{}, err
	}
	total, err := sumColumn(t, rows, p)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: total.String()}, nil
}

func opSum(t *Table, p Params) (Result, error) {
	total, err := sumColumn(t, t.Rows, p)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: total.String()}, nil
}

func opCount(t *Table, _ Params) (Result, error) {
	return Result{Text: strconv.Itoa(len(t.Rows))}, nil
}

func opGroupSum(t *Table, p Params) (Result, error) {
	by := "category"
	if c, ok, err := p.optStr("by"); err != nil {
		return Result{}, err
	} else if ok {
		by = c
	}
	byIdx, err := t.column(by)
	if err != nil {
		return Result{}, err
	}
	column := "amount"
	if c, ok, err := p.optStr("sum_column"); err != nil {
		return Result{}, err
	} else if ok {
		column = c
	}
	sumIdx, err := t.column(column)
	if err != nil {
		return Result{}, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, row := range t.Rows {
		v, err := decimal.NewFromString(row[sumIdx])
		if err != nil {
			return Result{}, fmt.Errorf("cell %q in column %q is not a number: %w", row[sumIdx], column, err)
		}
		totals[row[byIdx]] = totals[row[byIdx]].Add(v)
	}
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := &Table{Columns: []string{by, column}}
	for _, k := range keys {
		out.Rows = append(out.Rows, []string{k, totals[k].String()})
	}
	return Result{Table: out}, nil
}

func opSort(t *Table, p Params) (Result, error) {
	by, err := p.str("by")
	if err != nil {
		return Result{}, err
	}
	idx, err := t.column(by)
	if err != nil {
		return Result{}, err
	}
	desc, err := p.optBool("desc")
	if err != nil {
		return Result{}, err
	}

	rows := append([][]string(nil), t.Rows...)
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return cellLess(rows[j][idx], rows[i][idx])
		}
		return cellLess(rows[i][idx], rows[j][idx])
	})
	return Result{Table: &Table{Columns: t.Columns, Rows: rows}}, nil
}

// cellLess compares numerically when both cells are numbers, textually
// otherwise.
func cellLess(a, b string) bool {
	da, errA := decimal.NewFromString(a)
	db, errB := decimal.NewFromString(b)
	if errA == nil && errB == nil {
		return da.LessThan(db)
	}
	return a < b
}

func opHead(t *Table, p Params) (Result, error) {
	n, err := sliceSize(p)
	if err != nil {
		return Result{}, err
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return Result{Table: &Table{Columns: t.Columns, Rows: t.Rows[:n]}}, nil
}

func opTail(t *Table, p Params) (Result, error) {
	n, err := sliceSize(p)
	if err != nil {
		return Result{}, err
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return Result{Table: &Table{Columns: t.Columns, Rows: t.Rows[len(t.Rows)-n:]}}, nil
}

func sliceSize(p Params) (int, error) {
	n, ok, err := p.optInt("n")
	if err != nil {
		return 0, err
	}
	if !ok {
		return 5, nil
	}
	if n < 0 {
		return 0, fmt.Errorf("parameter \"n\" must not be negative, got %d", n)
	}
	return n, nil
}

func opJSONPath(t *Table, p Params) (Result, error) {
	path, err := p.str("path")
	if err != nil {
		return Result{}, err
	}
	objs := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		obj := make(map[string]string, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(row) {
				obj[col] = row[i]
			}
		}
		objs = append(objs, obj)
	}
	// jsonpath evaluates over plain decoded JSON values, so round-trip the
	// rows through encoding/json first.
	raw, err := json.Marshal(objs)
	if err != nil {
		return Result{}, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Result{}, err
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return Result{}, fmt.Errorf("could not evaluate path %q: %w", path, err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return Result{}, fmt.Errorf("could not render path result: %w", err)
	}
	return Result{Text: string(out)}, nil
}
