package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// vscodeSettings is rendered to .vscode/settings.json. Field order is the
// file's key order.
type vscodeSettings struct {
	HotReloadOnSave  string          `json:"dart.flutterHotReloadOnSave"`
	LineLength       int             `json:"dart.lineLength"`
	FormatOnSave     bool            `json:"editor.formatOnSave"`
	DefaultFormatter string          `json:"editor.defaultFormatter"`
	FilesExclude     map[string]bool `json:"files.exclude"`
}

type launchConfig struct {
	Version        string         `json:"version"`
	Configurations []launchTarget `json:"configurations"`
}

type launchTarget struct {
	Name    string `json:"name"`
	Request string `json:"request"`
	Type    string `json:"type"`
}

func defaultSettings() vscodeSettings {
	return vscodeSettings{
		HotReloadOnSave:  "all",
		LineLength:       100,
		FormatOnSave:     true,
		DefaultFormatter: "Dart-Code.dart-code",
		FilesExclude: map[string]bool{
			"**/.dart_tool": true,
			"**/build":      true,
		},
	}
}

func defaultLaunchConfig() launchConfig {
	return launchConfig{
		Version: "0.2.0",
		Configurations: []launchTarget{
			{Name: "Flutter Debug", Request: "launch", Type: "dart"},
		},
	}
}

// analysisOptions is rendered to analysis_options.yaml.
type analysisOptions struct {
	Include string      `yaml:"include"`
	Linter  linterBlock `yaml:"linter"`
}

type linterBlock struct {
	Rules lintRules `yaml:"rules"`
}

type lintRules struct {
	AvoidPrint              bool `yaml:"avoid_print"`
	PreferConstConstructors bool `yaml:"prefer_const_constructors"`
}

func defaultAnalysisOptions() analysisOptions {
	return analysisOptions{
		Include: "package:flutter_lints/flutter.yaml",
		Linter: linterBlock{
			Rules: lintRules{
				AvoidPrint:              false,
				PreferConstConstructors: true,
			},
		},
	}
}

// ciWorkflow is rendered to .github/workflows/flutter-ci.yml.
type ciWorkflow struct {
	Name string           `yaml:"name"`
	On   ciTriggers       `yaml:"on"`
	Jobs map[string]ciJob `yaml:"jobs"`
}

type ciTriggers struct {
	Push        ciPushTrigger `yaml:"push"`
	PullRequest struct{}      `yaml:"pull_request"`
}

type ciPushTrigger struct {
	Branches []string `yaml:"branches"`
}

type ciJob struct {
	RunsOn string   `yaml:"runs-on"`
	Steps  []ciStep `yaml:"steps"`
}

type ciStep struct {
	Uses string            `yaml:"uses,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
	Run  string            `yaml:"run,omitempty"`
}

func defaultWorkflow() ciWorkflow {
	return ciWorkflow{
		Name: "Flutter CI",
		On: ciTriggers{
			Push: ciPushTrigger{Branches: []string{"main"}},
		},
		Jobs: map[string]ciJob{
			"build": {
				RunsOn: "macos-latest",
				Steps: []ciStep{
					{Uses: "actions/checkout@v4"},
					{
						Uses: "subosito/flutter-action@v2",
						With: map[string]string{"flutter-version": "stable"},
					},
					{Run: "flutter pub get"},
					{Run: "flutter analyze"},
					{Run: "flutter test"},
				},
			},
		},
	}
}

// makefile gives the generated project its everyday commands. Recipe lines
// are tab-indented, as make requires.
const makefile = `run:
	flutter run -d chrome

run_ios:
	flutter run -d ios

run_android:
	flutter run -d android

analyze:
	flutter analyze

test:
	flutter test

integration:
	flutter test integration_test
`

const unitTest = `import 'package:flutter_test/flutter_test.dart';

void main() {
  test('sanity check', () {
    expect(1 + 1, equals(2));
  });
}
`

const widgetTestTemplate = `import 'package:flutter_test/flutter_test.dart';
import 'package:%s/main.dart';

void main() {
  testWidgets('App loads without errors', (tester) async {
    await tester.pumpWidget(const MyApp());
    expect(find.byType(MyApp), findsOneWidget);
  });
}
`

const integrationTestTemplate = `import 'package:integration_test/integration_test.dart';
import 'package:flutter_test/flutter_test.dart';
import 'package:%s/main.dart';

void main() {
  IntegrationTestWidgetsFlutterBinding.ensureInitialized();

  testWidgets('home page renders', (tester) async {
    await tester.pumpWidget(const MyApp());
    expect(find.byType(MyApp), findsOneWidget);
  });
}
`

const fence = "```"

const readmeTemplate = `# %s

Flutter app scaffolded for Cursor.

## Quickstart
` + fence + `bash
flutter pub get
make run            # runs on Chrome by default
` + fence + `

## Testing
` + fence + `bash
make test           # unit + widget tests
make integration    # integration_test/
` + fence + `

## Linting
` + fence + `bash
make analyze
` + fence + `

## Env vars
Edit ` + "`.env`" + ` and access with ` + "`dotenv.env['KEY']`" + ` after startup.
`

func renderJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func renderYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderEnvFile produces the sample .env. godotenv writes the entries; the
// leading comment survives because only the body is generated.
func renderEnvFile() ([]byte, error) {
	body, err := godotenv.Marshal(map[string]string{
		"API_URL": "https://api.example.com",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render .env: %w", err)
	}
	return []byte("# Example environment variables\n" + body + "\n"), nil
}
