package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"

	"flutter-setup/internal/config"
	"flutter-setup/internal/logger"
	"flutter-setup/internal/runner"
	"flutter-setup/internal/scaffold"
)

// dotenvMarker guards the entry-point patch: once main.dart mentions the
// package, the file is never edited again.
const dotenvMarker = "flutter_dotenv"

const dotenvImport = "import 'package:flutter_dotenv/flutter_dotenv.dart';"

// Bootstrap writes the development helpers into a generated project: editor
// config, Makefile, test tiers, lint config, CI workflow, env-file loading
// and a README. Every write lands the same bytes on every run, so running
// the whole thing twice changes nothing.
type Bootstrap struct {
	Runner runner.Runner
	Writer *scaffold.Writer

	// FlutterBin and DartBin are the executables of the synced SDK.
	FlutterBin string
	DartBin    string
}

// Run bootstraps the project described by cfg. Template files that cannot be
// written abort the run; the tool invocations at the end (pub add, format)
// only warn, matching how optional they are.
func (b *Bootstrap) Run(cfg config.RunConfig) error {
	logger.Info("[INFO] Bootstrapping development and testing helpers...\n")
	path := cfg.ProjectPath()

	if err := b.writeEditorConfig(path); err != nil {
		return err
	}
	if err := b.Writer.WriteFile(filepath.Join(path, "Makefile"), []byte(makefile)); err != nil {
		return err
	}
	if err := b.writeTestStubs(path, cfg.PackageName()); err != nil {
		return err
	}
	if err := b.writeAnalysisOptions(path); err != nil {
		return err
	}
	if err := b.writeWorkflow(path); err != nil {
		return err
	}
	b.addDependencies(path)
	if err := b.writeEnvSupport(path); err != nil {
		return err
	}
	readme := fmt.Sprintf(readmeTemplate, cfg.ProjectName)
	if err := b.Writer.WriteFile(filepath.Join(path, "README.md"), []byte(readme)); err != nil {
		return err
	}
	b.formatCode(path)

	logger.Info("[INFO] Development helpers in place\n")
	return nil
}

func (b *Bootstrap) writeEditorConfig(path string) error {
	settings, err := renderJSON(defaultSettings())
	if err != nil {
		return fmt.Errorf("failed to render editor settings: %w", err)
	}
	if err := b.Writer.WriteFile(filepath.Join(path, ".vscode", "settings.json"), settings); err != nil {
		return err
	}

	launch, err := renderJSON(defaultLaunchConfig())
	if err != nil {
		return fmt.Errorf("failed to render launch config: %w", err)
	}
	return b.Writer.WriteFile(filepath.Join(path, ".vscode", "launch.json"), launch)
}

// writeTestStubs lays out the three test tiers with one smoke test each.
func (b *Bootstrap) writeTestStubs(path, packageName string) error {
	if err := b.Writer.WriteFile(filepath.Join(path, "test", "unit", "sanity_test.dart"), []byte(unitTest)); err != nil {
		return err
	}
	widgetTest := fmt.Sprintf(widgetTestTemplate, packageName)
	if err := b.Writer.WriteFile(filepath.Join(path, "test", "widget", "app_widget_test.dart"), []byte(widgetTest)); err != nil {
		return err
	}
	integrationTest := fmt.Sprintf(integrationTestTemplate, packageName)
	return b.Writer.WriteFile(filepath.Join(path, "integration_test", "app_test.dart"), []byte(integrationTest))
}

func (b *Bootstrap) writeAnalysisOptions(path string) error {
	data, err := renderYAML(defaultAnalysisOptions())
	if err != nil {
		return fmt.Errorf("failed to render analysis options: %w", err)
	}
	return b.Writer.WriteFile(filepath.Join(path, "analysis_options.yaml"), data)
}

func (b *Bootstrap) writeWorkflow(path string) error {
	data, err := renderYAML(defaultWorkflow())
	if err != nil {
		return fmt.Errorf("failed to render CI workflow: %w", err)
	}
	return b.Writer.WriteFile(filepath.Join(path, ".github", "workflows", "flutter-ci.yml"), data)
}

// addDependencies pulls in the packages the scaffolding relies on. pub
// failures are survivable; the files still work once the user adds the
// packages by hand.
func (b *Bootstrap) addDependencies(path string) {
	logger.Info("[INFO] Adding project dependencies...\n")
	if _, err := b.Runner.Run(path, b.FlutterBin, "pub", "add", "flutter_dotenv"); err != nil {
		logger.Warn("[WARN] Could not add flutter_dotenv, continuing: %v\n", err)
	}
	if _, err := b.Runner.Run(path, b.FlutterBin, "pub", "add", "--dev", "flutter_lints", "integration_test"); err != nil {
		logger.Warn("[WARN] Could not add dev dependencies, continuing: %v\n", err)
	}
}

func (b *Bootstrap) writeEnvSupport(path string) error {
	env, err := renderEnvFile()
	if err != nil {
		return err
	}
	if err := b.Writer.WriteFile(filepath.Join(path, ".env"), env); err != nil {
		return err
	}
	b.patchEntryPoint(path)
	return nil
}

// patchEntryPoint rewires lib/main.dart to load .env before the app starts.
// Projects without the file (plugins, unusual layouts) are skipped.
func (b *Bootstrap) patchEntryPoint(path string) {
	mainDart := filepath.Join(path, "lib", "main.dart")
	content, err := b.Writer.ReadFile(mainDart)
	if err != nil {
		logger.Debug("[DEBUG] No %s to patch\n", mainDart)
		return
	}

	patched, changed := patchMainDart(string(content))
	if !changed {
		logger.Info("[INFO] main.dart already loads .env\n")
		return
	}
	if err := b.Writer.WriteFile(mainDart, []byte(patched)); err != nil {
		logger.Warn("[WARN] Could not update main.dart, continuing: %v\n", err)
		return
	}
	logger.Info("[INFO] main.dart now loads .env on startup\n")
}

// patchMainDart inserts the dotenv import after the first flutter import and
// makes main load the .env file. Content already mentioning the package is
// returned untouched.
func patchMainDart(content string) (string, bool) {
	if strings.Contains(content, dotenvMarker) {
		return content, false
	}

	lines := strings.Split(content, "\n")
	insertAt := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "import ") && strings.Contains(line, "package:flutter") {
			insertAt = i + 1
			break
		}
	}
	lines = append(lines[:insertAt], append([]string{dotenvImport}, lines[insertAt:]...)...)

	patched := strings.Join(lines, "\n")
	patched = strings.Replace(
		patched,
		"void main() {",
		"Future<void> main() async {\n  await dotenv.load(fileName: \".env\");",
		1,
	)
	return patched, true
}

func (b *Bootstrap) formatCode(path string) {
	if _, err := b.Runner.Run(path, b.DartBin, "format", "."); err != nil {
		logger.Warn("[WARN] Code formatting failed, continuing: %v\n", err)
		return
	}
	logger.Info("[INFO] Code formatted\n")
}
