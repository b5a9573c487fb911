// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"

	"github.com/paletteplay/paletteplay/internal/models"
)

// GenerateCSS renders a stylesheet that exposes the four theme roles as CSS
// variables and applies them to the base elements the marketing pages use.
func GenerateCSS(colors models.ColorSet) string {
	return fmt.Sprintf(`:root {
  --theme-background: %s;
  --theme-text: %s;
  --theme-accent: %s;
  --theme-secondary: %s;
}

/* Apply theme colors */
body {
  background-color: var(--theme-background);
  color: var(--theme-text);
  transition: background-color 0.2s, color 0.2s;
}

a {
  color: var(--theme-accent);
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

button, .btn {
  background-color: var(--theme-accent);
  color: var(--theme-background);
  border: none;
  padding: 8px 16px;
  border-radius: 4px;
  cursor: pointer;
  transition: opacity 0.2s;
}

button:hover, .btn:hover {
  opacity: 0.9;
}

.accent {
  color: var(--theme-accent);
}

.accent-bg {
  background-color: var(--theme-accent);
}

.secondary {
  color: var(--theme-secondary);
}

.secondary-bg {
  background-color: var(--theme-secondary);
}

.card {
  background-color: var(--theme-background);
  border: 1px solid var(--theme-secondary);
  border-radius: 8px;
  padding: 16px;
}
`, colors.Background, colors.Text, colors.Accent, colors.Secondary)
}
