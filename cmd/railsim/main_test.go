package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"railsim/internal/domain"
	"railsim/internal/engine"
	"railsim/pkg/api"
	"railsim/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

var lastCartLayout = strings.Join([]string{
	`/>-<\  `,
	`|   |  `,
	`| /<+-\`,
	`| | | v`,
	`\>+</ |`,
	`  |   ^`,
	`  \<->/`,
}, "\n")

func runReport(t *testing.T) *engine.Report {
	t.Helper()
	grid, err := domain.ParseGrid(lastCartLayout)
	require.NoError(t, err)
	report, err := engine.Run(grid, engine.NewConfig(), engine.ModeBoth)
	require.NoError(t, err)
	return report
}

func TestPrintReport_Text(t *testing.T) {
	report := runReport(t)

	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, report, options{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "First collision: "))
	assert.Equal(t, "Last cart: 6,4", lines[1])
}

func TestPrintReport_Snapshot(t *testing.T) {
	report := runReport(t)

	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, report, options{snapshot: true}))
	assert.Contains(t, buf.String(), report.Final.String())
}

func TestPrintReport_JSON(t *testing.T) {
	report := runReport(t)

	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, report, options{json: true}))

	var dto api.RunReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &dto))
	require.NoError(t, dto.Validate())

	assert.Equal(t, report.RunID.String(), dto.RunID)
	require.NotNil(t, dto.LastCart)
	assert.Equal(t, "6,4", dto.LastCart.Text)
	assert.Len(t, dto.Collisions, 4)
	assert.Equal(t, 9, dto.InitialCarts)
	assert.Empty(t, dto.Snapshot)
}

func TestPrintReport_PartialResults(t *testing.T) {
	// Две вагонетки: последней нет, но первое столкновение все равно печатается.
	layout := strings.Join([]string{
		`/->-\`,
		`|   |  /----\`,
		`| /-+--+-\  |`,
		`| | |  | v  |`,
		`\-+-/  \-+--/`,
		`  \------/`,
	}, "\n")
	grid, err := domain.ParseGrid(layout)
	require.NoError(t, err)

	report, err := engine.Run(grid, engine.NewConfig(), engine.ModeBoth)
	require.ErrorIs(t, err, engine.ErrNoSurvivor)

	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, report, options{}))
	assert.Equal(t, "First collision: 7,3\n", buf.String())

	buf.Reset()
	require.NoError(t, printReport(&buf, report, options{json: true}))

	var dto api.RunReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &dto))
	require.NotNil(t, dto.FirstCollision)
	assert.Equal(t, "7,3", dto.FirstCollision.At.Text)
	assert.Nil(t, dto.LastCart)
	require.Len(t, dto.Errors, 1)
	assert.Contains(t, dto.Errors[0], "last cart")
}
