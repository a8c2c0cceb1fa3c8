package x_log

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultStylesByName(t *testing.T) {
	for _, name := range []string{"dark", "light", "DARK", "unknown"} {
		styles := DefaultStylesByName(name)
		for _, lvl := range []zerolog.Level{zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel, zerolog.FatalLevel} {
			_, ok := styles.Levels[lvl]
			assert.True(t, ok, "%s theme has no style for %s", name, lvl)
		}
		_, ok := styles.Keys["module"]
		assert.True(t, ok, name)
	}
}

func TestStylesRender_NoColor(t *testing.T) {
	styles := DefaultStylesDark()
	styles.NoColor = true
	assert.Equal(t, "plain", styles.render(styles.Message.Bold(true), "plain"))
}
