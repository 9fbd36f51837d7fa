package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/UnknownOlympus/focuslearn/internal/models"
)

// ErrNoRoster is returned when the document has no table rows to import.
var ErrNoRoster = errors.New("no roster table found")

type column int

const (
	colID column = iota
	colName
	colDepartment
	colPosition
	colCourse
	colStatus
	columnCount
)

// headerNames maps the column captions of the training status screen export to columns.
// English captions are accepted as well.
var headerNames = map[string]column{
	"직원 id": colID, "id": colID,
	"이름": colName, "name": colName,
	"부서": colDepartment, "department": colDepartment,
	"직급": colPosition, "position": colPosition,
	"교육과정명": colCourse, "course": colCourse,
	"진행상태": colStatus, "status": colStatus,
}

// ParseRoster reads the first table of an HTML training roster.
//
// When the table has a header row (th cells) the columns are located by caption, otherwise
// the cells are read in the order id, name, department, position, course, status.
// Rows without an id or a name are skipped.
func ParseRoster(in io.Reader) ([]models.TrainingEmployee, error) {
	doc, err := goquery.NewDocumentFromReader(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster document: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoRoster
	}

	layout := defaultLayout()
	if header := table.Find("tr:has(th)").First(); header.Length() > 0 {
		layout = headerLayout(header)
	}

	employees := make([]models.TrainingEmployee, 0)

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}

		cell := func(col column) string {
			idx, ok := layout[col]
			if !ok || idx >= cells.Length() {
				return ""
			}
			return strings.TrimSpace(cells.Eq(idx).Text())
		}

		employee := models.TrainingEmployee{
			ID:         cell(colID),
			Name:       cell(colName),
			Department: cell(colDepartment),
			Position:   cell(colPosition),
			Course:     cell(colCourse),
			Status:     cell(colStatus),
		}
		if employee.ID == "" || employee.Name == "" {
			return
		}

		employees = append(employees, employee)
	})

	return employees, nil
}

// ParseRosterFile opens path and parses it with ParseRoster.
func ParseRosterFile(path string) ([]models.TrainingEmployee, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster %s: %w", path, err)
	}
	defer file.Close()

	return ParseRoster(file)
}

func defaultLayout() map[column]int {
	layout := make(map[column]int, columnCount)
	for col := colID; col < columnCount; col++ {
		layout[col] = int(col)
	}
	return layout
}

func headerLayout(header *goquery.Selection) map[column]int {
	layout := make(map[column]int, columnCount)

	header.Find("th").Each(func(idx int, th *goquery.Selection) {
		caption := strings.ToLower(strings.TrimSpace(th.Text()))
		if col, ok := headerNames[caption]; ok {
			layout[col] = idx
		}
	})

	return layout
}
