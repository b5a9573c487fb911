package themes

import (
	"fmt"
	"sort"
)

// Snippet generators for the styling frameworks offered in the export
// dialog. Each takes a theme and returns copy-pasteable code wiring the four
// color roles into that framework's configuration.

type generator func(Theme) string

var generators = map[string]generator{
	"css":        cssSnippet,
	"tailwind":   tailwindSnippet,
	"bootstrap":  bootstrapSnippet,
	"bulma":      bulmaSnippet,
	"foundation": foundationSnippet,
	"materialui": materialUISnippet,
}

// Frameworks lists the supported export targets, sorted.
func Frameworks() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GenerateSnippet renders the export snippet for one framework.
func GenerateSnippet(framework string, theme Theme) (string, error) {
	gen, ok := generators[framework]
	if !ok {
		return "", fmt.Errorf("unknown framework %q", framework)
	}
	return gen(theme), nil
}

func cssSnippet(t Theme) string {
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
}`, t.Colors.Background, t.Colors.Text, t.Colors.Accent, t.Colors.Secondary)
}

func tailwindSnippet(t Theme) string {
	return fmt.Sprintf(`// tailwind.config.js
module.exports = {
  theme: {
    extend: {
      colors: {
        'theme': {
          background: '%s',
          text: '%s',
          accent: '%s',
          secondary: '%s',
        }
      }
    }
  }
}

// In your CSS file
@tailwind base;
@tailwind components;
@tailwind utilities;

@layer base {
  :root {
    --theme-background: %s;
    --theme-text: %s;
    --theme-accent: %s;
    --theme-secondary: %s;
  }
}`, t.Colors.Background, t.Colors.Text, t.Colors.Accent, t.Colors.Secondary,
		t.Colors.Background, t.Colors.Text, t.Colors.Accent, t.Colors.Secondary)
}

func bootstrapSnippet(t Theme) string {
	return fmt.Sprintf(`// _variables.scss
$theme-colors: (
  "background": %s,
  "text": %s,
  "accent": %s,
  "secondary": %s
);

// In your main.scss file
@import "variables";
@import "bootstrap/scss/bootstrap";

// Or use CSS variables
:root {
  --bs-theme-background: %s;
  --bs-theme-text: %s;
  --bs-theme-accent: %s;
  --bs-theme-secondary: %s;
}`, t.Colors.Background, t.Colors.Text, t.Colors.Accent, t.Colors.Secondary,
		t.Colors.Background, t.Colors.Text, t.Colors.Accent, t.Colors.Secondary)
}

func bulmaSnippet(t Theme) string {
	return fmt.Sprintf(`// Bulma customization (variables.sass)
$theme-background: %s
$theme-text: %s
$theme-accent: %s
$theme-secondary: %s

// You can map these to Bulma variables
$primary: $theme-accent
$text: $theme-text
$link: $theme-accent
$info: $theme-secondary

// Import Bulma after variables
@import "bulma/bulma"`, t.Colors.Background, t.Colors.Text, t.Colors.Accent, t.Colors.Secondary)
}

func foundationSnippet(t Theme) string {
	return fmt.Sprintf(`// Foundation customization (settings.scss)
$theme-background: %s;
$theme-text: %s;
$theme-accent: %s;
$theme-secondary: %s;

// Map to Foundation variables
$primary-color: $theme-accent;
$body-font-color: $theme-text;
$body-background: $theme-background;
$secondary-color: $theme-secondary;

// Import Foundation after settings
@import 'foundation';`, t.Colors.Background, t.Colors.Text, t.Colors.Accent, t.Colors.Secondary)
}

func materialUISnippet(t Theme) string {
	return fmt.Sprintf(`// Material UI theme (createTheme)
import { createTheme } from '@mui/material/styles';

const theme = createTheme({
  palette: {
    primary: {
      main: '%s',
    },
    secondary: {
      main: '%s',
    },
    background: {
      default: '%s',
    },
    text: {
      primary: '%s',
    },
  },
});

export default theme;`, t.Colors.Accent, t.Colors.Secondary, t.Colors.Background, t.Colors.Text)
}
