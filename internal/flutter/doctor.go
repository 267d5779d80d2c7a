package flutter

import (
	"fmt"
	"strings"

	"flutter-setup/internal/logger"
	"flutter-setup/internal/prompt"
	"flutter-setup/internal/runner"
)

// Check-line markers flutter doctor prints per category.
const (
	glyphPass    = "[✓]"
	glyphWarning = "[!]"
	glyphError   = "[✗]"
)

// androidLicenseHint appears in doctor output, as a detail line under the
// Android toolchain category, when licenses still need accepting.
const androidLicenseHint = "Some Android licenses not accepted"

// DoctorReport summarizes one flutter doctor run.
type DoctorReport struct {
	Passed          int
	Warnings        []string
	Errors          []string
	LicensesMissing bool
}

// HasIssues reports whether any category was less than healthy.
func (r DoctorReport) HasIssues() bool {
	return len(r.Warnings) > 0 || len(r.Errors) > 0
}

// parseDoctorOutput reads the category lines out of doctor output. The
// license problem is detected by scanning every line for the hint text: it
// lives in a nested detail line, not in a category header, so this also
// covers output whose shape we do not recognize at all.
func parseDoctorOutput(out string) DoctorReport {
	var report DoctorReport
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, glyphPass):
			report.Passed++
		case strings.HasPrefix(trimmed, glyphWarning):
			report.Warnings = append(report.Warnings, strings.TrimSpace(strings.TrimPrefix(trimmed, glyphWarning)))
		case strings.HasPrefix(trimmed, glyphError):
			report.Errors = append(report.Errors, strings.TrimSpace(strings.TrimPrefix(trimmed, glyphError)))
		}
		if strings.Contains(line, androidLicenseHint) {
			report.LicensesMissing = true
		}
	}
	return report
}

// Doctor runs flutter doctor against the synced SDK and reacts to what it
// reports. Findings are surfaced but never abort a run.
type Doctor struct {
	Runner runner.Runner
	Ask    prompt.Func

	// Bin is the flutter executable to invoke.
	Bin string

	// Android enables the license follow-up, which only makes sense when
	// the run targets Android.
	Android bool
}

// Run executes flutter doctor and logs its findings. The only error case is
// the doctor invocation itself failing to produce anything, for example
// when the SDK is missing.
func (d *Doctor) Run() error {
	logger.Info("[INFO] Running flutter doctor...\n")

	out, err := d.Runner.Run("", d.Bin, "doctor", "-v")
	if out == "" {
		if err != nil {
			return fmt.Errorf("failed to run flutter doctor: %w", err)
		}
		// Nothing came back; in a dry run the command is only echoed.
		return nil
	}

	report := parseDoctorOutput(out)
	switch {
	case err == nil && !report.HasIssues():
		logger.Info("[INFO] flutter doctor found no issues (%d checks passed)\n", report.Passed)
	case report.HasIssues():
		for _, warning := range report.Warnings {
			logger.Warn("[WARN] doctor: %s\n", warning)
		}
		for _, problem := range report.Errors {
			logger.Error("[ERROR] doctor: %s\n", problem)
		}
	default:
		// Doctor exited non-zero but printed no category lines we
		// recognize; show what it said verbatim.
		logger.Warn("[WARN] flutter doctor reported issues:\n%s\n", strings.TrimSpace(out))
	}

	if report.LicensesMissing {
		d.handleAndroidLicenses()
	}
	return nil
}

// handleAndroidLicenses offers to run the interactive license acceptance
// flow. Declined or non-Android runs get a hint instead.
func (d *Doctor) handleAndroidLicenses() {
	if !d.Android {
		return
	}
	logger.Warn("[WARN] Some Android licenses are not accepted\n")
	if d.Ask("Accept the Android SDK licenses now?") {
		if err := d.Runner.RunAttached("", d.Bin, "doctor", "--android-licenses"); err != nil {
			logger.Warn("[WARN] License acceptance failed, continuing: %v\n", err)
		}
		return
	}
	logger.Info("[INFO] Run 'flutter doctor --android-licenses' later to accept them\n")
}
