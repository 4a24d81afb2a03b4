// Package renderer turns ledger and calendar values into markdown for the
// terminal and for the assistant's answers.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"lifeassist"
	"lifeassist/date"
)

// ExpensesMarkdown renders a month's records as a table, in store order.
func ExpensesMarkdown(m date.Month, s *lifeassist.Store) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expenses for %s", m))

	table := md.TableSet{Header: []string{"Date", "Amount", "Category", "Description"}}
	for _, r := range s.Records {
		table.Rows = append(table.Rows, []string{
			r.Date.Format(lifeassist.StampFormat),
			r.Amount.String(),
			r.Category,
			r.Description,
		})
	}
	doc.Table(table)

	return doc.String()
}

// SummaryMarkdown renders per-category totals, already sorted by category.
func SummaryMarkdown(m date.Month, rows []lifeassist.CategoryTotal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expense Summary for %s", m))

	table := md.TableSet{Header: []string{"Category", "Total"}}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{r.Category, r.Total.String()})
	}
	doc.Table(table)

	return doc.String()
}

// ReportMarkdown renders the monthly financial report: header, grand total
// in the display currency, and the per-category breakdown.
func ReportMarkdown(m date.Month, total lifeassist.Money, rows []lifeassist.CategoryTotal, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Financial Report for %s", m))
	doc.PlainText(fmt.Sprintf("Total Expenses: %s", total))

	doc.H2("By Category")
	table := md.TableSet{Header: []string{"Category", "Total"}}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{r.Category, lifeassist.M(r.Total, currency).String()})
	}
	doc.Table(table)

	return doc.String()
}

// TableMarkdown renders a query result grid.
func TableMarkdown(t *lifeassist.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.Table(md.TableSet{Header: t.Columns, Rows: t.Rows})
	return doc.String()
}
