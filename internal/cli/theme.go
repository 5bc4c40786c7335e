package cli

import (
	"strings"

	"github.com/madeye/ghostty-config/internal/errors"
	"github.com/madeye/ghostty-config/internal/output"
	"github.com/madeye/ghostty-config/internal/themes"
	"github.com/spf13/cobra"
)

var (
	themeDarkOnly  bool
	themeLightOnly bool
	themeSearch    string
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the color theme",
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed themes",
	Long: `List ghostty's installed themes with their key colors.

Examples:
  ghostty-config theme list
  ghostty-config theme list --dark
  ghostty-config theme list --search catppuccin`,
	RunE: runThemeList,
}

var themeApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Apply a theme and save",
	Long: `Set the theme key in the config file.

Examples:
  ghostty-config theme apply catppuccin-mocha`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeApply,
}

func init() {
	themeListCmd.Flags().BoolVar(&themeDarkOnly, "dark", false, "Only show dark themes")
	themeListCmd.Flags().BoolVar(&themeLightOnly, "light", false, "Only show light themes")
	themeListCmd.Flags().StringVar(&themeSearch, "search", "", "Filter themes by name substring")
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeApplyCmd)
	rootCmd.AddCommand(themeCmd)
}

// filterThemes applies the dark/light and search filters.
func filterThemes(all []themes.Theme, darkOnly, lightOnly bool, search string) []themes.Theme {
	search = strings.ToLower(search)

	var filtered []themes.Theme
	for _, t := range all {
		if darkOnly && !t.IsDark {
			continue
		}
		if lightOnly && t.IsDark {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Name), search) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func runThemeList(cmd *cobra.Command, args []string) error {
	a, _, err := loadApp(true)
	if err != nil {
		return err
	}

	if len(a.Themes) == 0 {
		return errors.ErrThemesNotFound
	}

	current, _ := a.Value("theme")
	filtered := filterThemes(a.Themes, themeDarkOnly, themeLightOnly, themeSearch)

	if jsonOutput {
		return output.JSON(filtered)
	}

	rows := make([][]string, 0, len(filtered))
	for _, t := range filtered {
		variant := "light"
		if t.IsDark {
			variant = "dark"
		}
		marker := ""
		if t.Name == current {
			marker = "*"
		}
		rows = append(rows, []string{
			t.Name,
			variant,
			output.Swatch(t.Background),
			output.Swatch(t.Foreground),
			marker,
		})
	}
	output.Table([]string{"NAME", "VARIANT", "BACKGROUND", "FOREGROUND", "CURRENT"}, rows)
	return nil
}

func runThemeApply(cmd *cobra.Command, args []string) error {
	name := args[0]

	a, _, err := loadApp(true)
	if err != nil {
		return err
	}

	if _, ok := a.FindTheme(name); !ok && len(a.Themes) > 0 {
		return errors.WrapPath(errors.ErrCodeNotFound, "theme not found", name, nil)
	}

	a.ApplyTheme(name)
	if err := a.Save(); err != nil {
		return err
	}

	return outputResult(
		map[string]string{"theme": name},
		"Theme set to %s", name)
}
