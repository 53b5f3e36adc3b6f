package fetch

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SalaryRow is one city/salary pair extracted from a source page.
type SalaryRow struct {
	City      string
	AvgSalary int
}

var digitsPattern = regexp.MustCompile(`[\d,]+`)

// ParseSalaryTable extracts city and average-salary rows from the first
// HTML table on a salary-source page. Rows without a parseable salary
// figure are skipped; an empty result is not an error because sources
// occasionally ship pages with no table at all.
func ParseSalaryTable(html string) ([]SalaryRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{Message: "failed to parse HTML", Cause: err}
	}

	var rows []SalaryRow
	doc.Find("table").First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return
		}
		city := strings.TrimSpace(cells.Eq(0).Text())
		salary, ok := parseSalaryCell(cells.Eq(1).Text())
		if city == "" || !ok {
			return
		}
		rows = append(rows, SalaryRow{City: city, AvgSalary: salary})
	})
	return rows, nil
}

// parseSalaryCell turns cell text like "$95,000" or "95000 USD" into an
// integer annual salary.
func parseSalaryCell(text string) (int, bool) {
	match := digitsPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	value, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}
