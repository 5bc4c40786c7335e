package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/madeye/ghostty-config/internal/app"
	"github.com/madeye/ghostty-config/internal/ghostty"
	"github.com/madeye/ghostty-config/internal/output"
	"github.com/madeye/ghostty-config/internal/schema"
	"github.com/madeye/ghostty-config/internal/themes"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the setup and diagnose config issues",
	Long: `Run diagnostic checks on the ghostty installation and config file.

Checks:
  - Ghostty binary discovery and version
  - Schema extraction
  - Themes directory
  - Config file location
  - Unknown keys in the config file
  - Repeated keys that ghostty does not accumulate

Examples:
  ghostty-config doctor
  ghostty-config doctor --json`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `json:"status"` // "success", "warning", "error"
	Message string `json:"message"`
}

// DoctorReport contains all diagnostic results
type DoctorReport struct {
	Installation []CheckResult `json:"installation"`
	ConfigFile   []CheckResult `json:"config_file"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	report := &DoctorReport{}

	a, client, err := loadApp(false)
	if err != nil {
		report.Installation = append(report.Installation, CheckResult{
			Status:  "error",
			Message: fmt.Sprintf("Setup failed: %v", err),
		})
		return reportDoctor(report)
	}

	report.Installation = checkInstallation(a, client)
	report.ConfigFile = checkConfigFile(a)

	return reportDoctor(report)
}

func checkInstallation(a *app.App, client *ghostty.Client) []CheckResult {
	results := []CheckResult{
		{Status: "success", Message: fmt.Sprintf("Ghostty binary: %s", a.GhosttyPath)},
	}

	if ver, err := client.Version(); err == nil {
		firstLine, _, _ := strings.Cut(strings.TrimSpace(ver), "\n")
		results = append(results, CheckResult{Status: "success", Message: firstLine})
	} else {
		results = append(results, CheckResult{
			Status:  "warning",
			Message: fmt.Sprintf("Could not read ghostty version: %v", err),
		})
	}

	if n := len(a.Schema.Options); n > 0 {
		results = append(results, CheckResult{
			Status:  "success",
			Message: fmt.Sprintf("Schema extracted: %d options", n),
		})
	} else {
		results = append(results, CheckResult{
			Status:  "error",
			Message: "Schema extraction produced no options",
		})
	}

	if dir, ok := themes.Dir(); ok {
		results = append(results, CheckResult{
			Status:  "success",
			Message: fmt.Sprintf("Themes directory: %s", dir),
		})
	} else {
		results = append(results, CheckResult{
			Status:  "warning",
			Message: "No themes directory found, theme commands will be empty",
		})
	}

	return results
}

func checkConfigFile(a *app.App) []CheckResult {
	var results []CheckResult

	path := a.ConfigPath()
	if _, err := os.Stat(path); err == nil {
		results = append(results, CheckResult{
			Status:  "success",
			Message: fmt.Sprintf("Config file: %s", path),
		})
	} else {
		results = append(results, CheckResult{
			Status:  "warning",
			Message: fmt.Sprintf("Config file does not exist yet: %s", path),
		})
	}

	settings := a.Settings()

	// Keys not in the schema are usually typos
	for _, s := range settings {
		if _, ok := a.Schema.FindOption(s.Key); !ok {
			results = append(results, CheckResult{
				Status:  "warning",
				Message: fmt.Sprintf("Unknown key %q (not in this ghostty version's schema)", s.Key),
			})
		}
	}

	// Repeated keys are fine for repeatable options, suspicious otherwise
	seen := make(map[string]int)
	for _, s := range settings {
		seen[s.Key]++
	}
	for key, count := range seen {
		if count > 1 && !schema.IsRepeatable(key) {
			results = append(results, CheckResult{
				Status:  "warning",
				Message: fmt.Sprintf("Key %q appears %d times; ghostty uses the last value", key, count),
			})
		}
	}

	if len(results) == 1 {
		results = append(results, CheckResult{
			Status:  "success",
			Message: fmt.Sprintf("No issues in %d configured keys", len(settings)),
		})
	}

	return results
}

func reportDoctor(report *DoctorReport) error {
	if jsonOutput {
		return output.JSON(report)
	}

	output.Heading("Installation")
	printChecks(report.Installation)
	output.Print("")
	output.Heading("Config file")
	printChecks(report.ConfigFile)
	return nil
}

func printChecks(checks []CheckResult) {
	for _, check := range checks {
		switch check.Status {
		case "success":
			output.Success("%s", check.Message)
		case "warning":
			output.Warn("%s", check.Message)
		default:
			output.Error("%s", check.Message)
		}
	}
}
