package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/DevHanzala/TMS-PORTAL/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestFromWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	lines := [][]interface{}{
		{"Attendance Report"},
		{"Device", "ZK-100"},
		{"Period", "01/02/2024", "29/02/2024"},
		{"Exported", "01/03/2024"},
		{"Timezone", "PKT"},
		{"Branch", "Head Office"},
		{"Operator", "admin"},
		{"User ID", "1001", "Name", "Some Employee"},
		{"01/02/2024", "Thu.", "", "", "9:05", "", "18:02"},
	}
	for i, cells := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		assert.NoError(t, err)
		assert.NoError(t, f.SetSheetRow(sheet, cell, &cells))
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	assert.NoError(t, err)

	raw, err := report.FromWorkbook(&buf)
	assert.NoError(t, err)

	rows := report.Parse(raw)
	assert.NotEmpty(t, rows)
	assert.True(t, rows[0].IsSectionMarker())
	assert.Equal(t, "1001", rows[0].Field(1))
}

func TestFromWorkbook_RejectsGarbage(t *testing.T) {
	_, err := report.FromWorkbook(strings.NewReader("not a zip archive"))
	assert.Error(t, err)
}
