package bootstrap

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"flutter-setup/internal/config"
	"flutter-setup/internal/scaffold"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	runs []string
	dirs []string
	errs map[string]error
}

func (f *fakeRunner) Run(dir, name string, args ...string) (string, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.runs = append(f.runs, line)
	f.dirs = append(f.dirs, dir)
	if f.errs != nil {
		return "", f.errs[line]
	}
	return "", nil
}

func (f *fakeRunner) Query(dir, name string, args ...string) (string, error) { return "", nil }
func (f *fakeRunner) RunAttached(dir, name string, args ...string) error     { return nil }
func (f *fakeRunner) LookPath(name string) (string, error)                   { return name, nil }

func testConfig() config.RunConfig {
	return config.RunConfig{
		ProjectName:     "MyApp",
		Org:             "com.example",
		Channel:         config.ChannelStable,
		OutputDir:       "work",
		Template:        config.TemplateApp,
		IosLanguage:     config.IosSwift,
		AndroidLanguage: config.AndroidKotlin,
		UpdateMode:      config.UpdateReset,
		Platforms:       []config.Platform{config.PlatformIos},
	}
}

func newBootstrap(f *fakeRunner, dryRun bool) *Bootstrap {
	return &Bootstrap{
		Runner:     f,
		Writer:     &scaffold.Writer{FS: memfs.New(), DryRun: dryRun},
		FlutterBin: "/sdk/flutter/bin/flutter",
		DartBin:    "/sdk/flutter/bin/dart",
	}
}

// scaffoldedFiles is every file one bootstrap run writes into the project.
var scaffoldedFiles = []string{
	".vscode/settings.json",
	".vscode/launch.json",
	"Makefile",
	"test/unit/sanity_test.dart",
	"test/widget/app_widget_test.dart",
	"integration_test/app_test.dart",
	"analysis_options.yaml",
	".github/workflows/flutter-ci.yml",
	".env",
	"README.md",
}

func readTree(t *testing.T, w *scaffold.Writer, root string) map[string]string {
	t.Helper()
	tree := make(map[string]string)
	for _, name := range scaffoldedFiles {
		data, err := w.ReadFile(filepath.Join(root, name))
		require.NoError(t, err, "expected %s to exist", name)
		tree[name] = string(data)
	}
	return tree
}

func TestRunWritesAllFiles(t *testing.T) {
	b := newBootstrap(&fakeRunner{}, false)
	cfg := testConfig()

	require.NoError(t, b.Run(cfg))
	tree := readTree(t, b.Writer, cfg.ProjectPath())

	assert.Equal(t, `{
  "dart.flutterHotReloadOnSave": "all",
  "dart.lineLength": 100,
  "editor.formatOnSave": true,
  "editor.defaultFormatter": "Dart-Code.dart-code",
  "files.exclude": {
    "**/.dart_tool": true,
    "**/build": true
  }
}
`, tree[".vscode/settings.json"])

	assert.Equal(t, `{
  "version": "0.2.0",
  "configurations": [
    {
      "name": "Flutter Debug",
      "request": "launch",
      "type": "dart"
    }
  ]
}
`, tree[".vscode/launch.json"])

	assert.True(t, strings.HasPrefix(tree["Makefile"], "run:\n\tflutter run -d chrome\n"))
	assert.Contains(t, tree["Makefile"], "integration:\n\tflutter test integration_test\n")

	assert.Contains(t, tree["test/widget/app_widget_test.dart"], "import 'package:myapp/main.dart';")
	assert.Contains(t, tree["integration_test/app_test.dart"], "IntegrationTestWidgetsFlutterBinding.ensureInitialized();")
	assert.Contains(t, tree["test/unit/sanity_test.dart"], "expect(1 + 1, equals(2));")

	assert.Contains(t, tree["analysis_options.yaml"], "include: package:flutter_lints/flutter.yaml")
	assert.Contains(t, tree["analysis_options.yaml"], "avoid_print: false")
	assert.Contains(t, tree["analysis_options.yaml"], "prefer_const_constructors: true")

	workflow := tree[".github/workflows/flutter-ci.yml"]
	assert.Contains(t, workflow, "name: Flutter CI")
	assert.Contains(t, workflow, "pull_request:")
	assert.Contains(t, workflow, "runs-on: macos-latest")
	assert.Contains(t, workflow, "uses: actions/checkout@v4")
	assert.Contains(t, workflow, "flutter-version: stable")
	assert.Contains(t, workflow, "run: flutter test")

	assert.Equal(t, "# Example environment variables\nAPI_URL=\"https://api.example.com\"\n", tree[".env"])
	assert.True(t, strings.HasPrefix(tree["README.md"], "# MyApp\n"))
}

func TestRunTwiceIsByteIdentical(t *testing.T) {
	b := newBootstrap(&fakeRunner{}, false)
	cfg := testConfig()

	mainDart := filepath.Join(cfg.ProjectPath(), "lib", "main.dart")
	require.NoError(t, b.Writer.WriteFile(mainDart, []byte(generatedMain)))

	require.NoError(t, b.Run(cfg))
	first := readTree(t, b.Writer, cfg.ProjectPath())
	firstMain, err := b.Writer.ReadFile(mainDart)
	require.NoError(t, err)

	require.NoError(t, b.Run(cfg))
	second := readTree(t, b.Writer, cfg.ProjectPath())
	secondMain, err := b.Writer.ReadFile(mainDart)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, string(firstMain), string(secondMain), "the entry-point patch must apply at most once")
}

func TestRunInvokesProjectTools(t *testing.T) {
	f := &fakeRunner{}
	b := newBootstrap(f, false)
	cfg := testConfig()

	require.NoError(t, b.Run(cfg))

	assert.Equal(t, []string{
		"/sdk/flutter/bin/flutter pub add flutter_dotenv",
		"/sdk/flutter/bin/flutter pub add --dev flutter_lints integration_test",
		"/sdk/flutter/bin/dart format .",
	}, f.runs)
	for _, dir := range f.dirs {
		assert.Equal(t, cfg.ProjectPath(), dir, "project tools run inside the project")
	}
}

func TestToolFailuresDoNotAbort(t *testing.T) {
	f := &fakeRunner{errs: map[string]error{
		"/sdk/flutter/bin/flutter pub add flutter_dotenv": errors.New("no pubspec.yaml"),
		"/sdk/flutter/bin/dart format .":                  errors.New("exit status 65"),
	}}
	b := newBootstrap(f, false)

	require.NoError(t, b.Run(testConfig()))
}

func TestRunWithoutMainDartSkipsPatch(t *testing.T) {
	b := newBootstrap(&fakeRunner{}, false)
	cfg := testConfig()

	require.NoError(t, b.Run(cfg))
	assert.False(t, b.Writer.Exists(filepath.Join(cfg.ProjectPath(), "lib", "main.dart")))
}

func TestDryRunWritesNothing(t *testing.T) {
	b := newBootstrap(&fakeRunner{}, true)
	cfg := testConfig()

	require.NoError(t, b.Run(cfg))
	for _, name := range scaffoldedFiles {
		assert.False(t, b.Writer.Exists(filepath.Join(cfg.ProjectPath(), name)), "%s must not be written in dry-run", name)
	}
}

const generatedMain = `import 'package:flutter/material.dart';

void main() {
  runApp(const MyApp());
}

class MyApp extends StatelessWidget {
  const MyApp({super.key});

  @override
  Widget build(BuildContext context) {
    return const MaterialApp(home: Placeholder());
  }
}
`

func TestPatchMainDart(t *testing.T) {
	patched, changed := patchMainDart(generatedMain)
	require.True(t, changed)

	assert.True(t, strings.HasPrefix(patched,
		"import 'package:flutter/material.dart';\nimport 'package:flutter_dotenv/flutter_dotenv.dart';\n"),
		"import goes right after the first flutter import, got:\n%s", patched)
	assert.Contains(t, patched, "Future<void> main() async {\n  await dotenv.load(fileName: \".env\");\n  runApp(const MyApp());")
	assert.NotContains(t, patched, "void main() {")
	assert.Contains(t, patched, "class MyApp extends StatelessWidget", "the rest of the file is preserved")
}

func TestPatchMainDartIsAppliedAtMostOnce(t *testing.T) {
	patched, changed := patchMainDart(generatedMain)
	require.True(t, changed)

	again, changed := patchMainDart(patched)
	assert.False(t, changed)
	assert.Equal(t, patched, again)
}

func TestPatchMainDartWithoutFlutterImport(t *testing.T) {
	patched, changed := patchMainDart("void main() {\n  print('hi');\n}\n")
	require.True(t, changed)

	assert.True(t, strings.HasPrefix(patched, dotenvImport+"\n"), "import lands at the top when no flutter import exists")
	assert.Contains(t, patched, "Future<void> main() async {")
}

func TestPatchMainDartLeavesArrowMainImportOnly(t *testing.T) {
	content := "import 'package:flutter/material.dart';\n\nvoid main() => runApp(const MyApp());\n"
	patched, changed := patchMainDart(content)

	require.True(t, changed)
	assert.Contains(t, patched, dotenvImport)
	assert.Contains(t, patched, "void main() => runApp(const MyApp());", "arrow-style mains are left for the user")
}
