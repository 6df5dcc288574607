package engine

import (
	"strings"
	"testing"

	"railsim/internal/domain"

	"github.com/stretchr/testify/require"
)

// Раскладки из примеров к задаче.
var (
	collisionLayout = strings.Join([]string{
		`/->-\`,
		`|   |  /----\`,
		`| /-+--+-\  |`,
		`| | |  | v  |`,
		`\-+-/  \-+--/`,
		`  \------/`,
	}, "\n")

	lastCartLayout = strings.Join([]string{
		`/>-<\  `,
		`|   |  `,
		`| /<+-\`,
		`| | | v`,
		`\>+</ |`,
		`  |   ^`,
		`  \<->/`,
	}, "\n")
)

func mustParse(t *testing.T, layout string) *domain.Grid {
	t.Helper()
	g, err := domain.ParseGrid(layout)
	require.NoError(t, err)
	return g
}
