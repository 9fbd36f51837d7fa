package parser_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/UnknownOlympus/focuslearn/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const headedRoster = `
<html><body>
<table>
	<tr>
		<th>진행상태</th><th>직원 ID</th><th>이름</th><th>부서</th><th>직급</th><th>교육과정명</th>
	</tr>
	<tr>
		<td>완료</td><td>1001</td><td> 김철수 </td><td>인사부</td><td>사원</td><td>개인정보보호법</td>
	</tr>
	<tr>
		<td>진행 중</td><td>1002</td><td>이영희</td><td>영업부</td><td>대리</td><td>산업안전법</td>
	</tr>
	<tr>
		<td>진행 중</td><td></td><td>No ID</td><td></td><td></td><td></td>
	</tr>
</table>
</body></html>`

func TestParseRoster_WithHeader(t *testing.T) {
	t.Parallel()

	employees, err := parser.ParseRoster(strings.NewReader(headedRoster))

	require.NoError(t, err)
	assert.Equal(t, []models.TrainingEmployee{
		{ID: "1001", Name: "김철수", Department: "인사부", Position: "사원", Course: "개인정보보호법", Status: "완료"},
		{ID: "1002", Name: "이영희", Department: "영업부", Position: "대리", Course: "산업안전법", Status: "진행 중"},
	}, employees)
}

func TestParseRoster_Positional(t *testing.T) {
	t.Parallel()

	doc := `<table>
		<tr><td>7</td><td>Jane Smith</td><td>Sales</td><td>Manager</td></tr>
		<tr><td>8</td><td></td><td>Sales</td><td>Manager</td><td>x</td><td>y</td></tr>
	</table>`

	employees, err := parser.ParseRoster(strings.NewReader(doc))

	require.NoError(t, err)
	assert.Equal(t, []models.TrainingEmployee{
		{ID: "7", Name: "Jane Smith", Department: "Sales", Position: "Manager"},
	}, employees)
}

func TestParseRoster_NoTable(t *testing.T) {
	t.Parallel()

	_, err := parser.ParseRoster(strings.NewReader("<p>nothing here</p>"))

	require.ErrorIs(t, err, parser.ErrNoRoster)
}

func TestParseRosterFile(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "roster.html")
	filet.File(t, path, headedRoster)

	employees, err := parser.ParseRosterFile(path)

	require.NoError(t, err)
	assert.Len(t, employees, 2)

	_, err = parser.ParseRosterFile(filepath.Join(dir, "missing.html"))
	require.ErrorContains(t, err, "failed to open roster")
}
