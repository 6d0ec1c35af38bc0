package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jitsnap/cmd/jitsnap/commands"
	"go.trai.ch/jitsnap/internal/app"
	"go.trai.ch/jitsnap/internal/core/domain"
)

type mockApp struct {
	settings app.Settings

	depsFunc   func(ctx context.Context, paths []string) ([]domain.PathDependencies, error)
	infoFunc   func(ctx context.Context, paths []string) ([]domain.FileInfo, error)
	readFunc   func(ctx context.Context, path string, w io.Writer) error
	listFunc   func(ctx context.Context) ([]domain.ListEntry, error)
	metaFunc   func(ctx context.Context, query string) (string, error)
	exportFunc func(ctx context.Context, dir string) (*domain.ExportIndex, error)
}

func (m *mockApp) Configure(s app.Settings) {
	m.settings = s
}

func (m *mockApp) Dependencies(ctx context.Context, paths []string) ([]domain.PathDependencies, error) {
	if m.depsFunc != nil {
		return m.depsFunc(ctx, paths)
	}
	return nil, nil
}

func (m *mockApp) FileInfos(ctx context.Context, paths []string) ([]domain.FileInfo, error) {
	if m.infoFunc != nil {
		return m.infoFunc(ctx, paths)
	}
	return nil, nil
}

func (m *mockApp) Read(ctx context.Context, path string, w io.Writer) error {
	if m.readFunc != nil {
		return m.readFunc(ctx, path, w)
	}
	return nil
}

func (m *mockApp) List(ctx context.Context) ([]domain.ListEntry, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockApp) Meta(ctx context.Context, query string) (string, error) {
	if m.metaFunc != nil {
		return m.metaFunc(ctx, query)
	}
	return "", nil
}

func (m *mockApp) Export(ctx context.Context, dir string) (*domain.ExportIndex, error) {
	if m.exportFunc != nil {
		return m.exportFunc(ctx, dir)
	}
	return &domain.ExportIndex{}, nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(a)
	cli.SetArgs(args)
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))

	err := cli.Execute(context.Background())
	return out.String(), err
}

func sampleDeps(_ context.Context, paths []string) ([]domain.PathDependencies, error) {
	results := make([]domain.PathDependencies, 0, len(paths))
	for _, p := range paths {
		switch p {
		case "main.js":
			results = append(results, domain.PathDependencies{Path: p, Dependencies: []string{"lib.js", "chunk.js"}})
		default:
			results = append(results, domain.PathDependencies{Path: p, Dependencies: []string{}})
		}
	}
	return results, nil
}

func TestCommands_Golden(t *testing.T) {
	mock := &mockApp{
		depsFunc: sampleDeps,
		infoFunc: func(_ context.Context, _ []string) ([]domain.FileInfo, error) {
			return []domain.FileInfo{
				{Path: "main.js", ETag: `"a1"`, Size: 1500, Generated: true},
				{Path: "src/app.ts", ETag: `"b2"`},
			}, nil
		},
		listFunc: func(_ context.Context) ([]domain.ListEntry, error) {
			return []domain.ListEntry{
				{Path: "dist/main.js", Size: 1500},
				{Path: "metafile.json", Size: 230},
			}, nil
		},
		exportFunc: func(_ context.Context, _ string) (*domain.ExportIndex, error) {
			return &domain.ExportIndex{Artifacts: []domain.Artifact{
				{Path: "dist/main.js", Digest: "0123456789abcdef", Size: 1500},
				{Path: "metafile.json", Digest: "fedcba9876543210", Size: 230},
			}}, nil
		},
	}

	tests := []struct {
		name string
		args []string
	}{
		{name: "deps", args: []string{"deps", "main.js", "lib.js"}},
		{name: "info", args: []string{"info", "main.js", "src/app.ts"}},
		{name: "ls", args: []string{"ls"}},
		{name: "export", args: []string{"export"}},
		{name: "version", args: []string{"version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, mock, tt.args...)
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.name, []byte(got))
		})
	}
}

func TestCommands_GlobalFlags(t *testing.T) {
	mock := &mockApp{depsFunc: sampleDeps}

	_, err := execute(t, mock, "deps", "main.js", "--config", "web/jitsnap.yaml", "--json", "-v")
	require.NoError(t, err)
	assert.Equal(t, app.Settings{ConfigPath: "web/jitsnap.yaml", JSON: true, Verbose: true}, mock.settings)
}

func TestCommands_DefaultConfigPath(t *testing.T) {
	mock := &mockApp{}

	_, err := execute(t, mock, "ls")
	require.NoError(t, err)
	assert.Equal(t, app.Settings{ConfigPath: "."}, mock.settings)
}

func TestCommands_JSON(t *testing.T) {
	t.Run("deps", func(t *testing.T) {
		got, err := execute(t, &mockApp{depsFunc: sampleDeps}, "deps", "main.js", "--json")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"path":"main.js","dependencies":["lib.js","chunk.js"]}]`, got)
	})

	t.Run("ls", func(t *testing.T) {
		mock := &mockApp{
			listFunc: func(_ context.Context) ([]domain.ListEntry, error) {
				return []domain.ListEntry{{Path: "main.js", Size: 3}}, nil
			},
		}
		got, err := execute(t, mock, "ls", "--json")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"path":"main.js","size":3}]`, got)
	})

	t.Run("info", func(t *testing.T) {
		mock := &mockApp{
			infoFunc: func(_ context.Context, _ []string) ([]domain.FileInfo, error) {
				return []domain.FileInfo{{Path: "main.js", ETag: `"a1"`, Size: 3, Generated: true}}, nil
			},
		}
		got, err := execute(t, mock, "info", "main.js", "--json")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"path":"main.js","etag":"\"a1\"","size":3,"generated":true}]`, got)
	})
}

func TestCommands_Cat(t *testing.T) {
	var gotPath string
	mock := &mockApp{
		readFunc: func(_ context.Context, path string, w io.Writer) error {
			gotPath = path
			_, err := io.WriteString(w, "console.log(1);\n")
			return err
		},
	}

	got, err := execute(t, mock, "cat", "dist/main.js")
	require.NoError(t, err)
	assert.Equal(t, "dist/main.js", gotPath)
	assert.Equal(t, "console.log(1);\n", got)
}

func TestCommands_Meta(t *testing.T) {
	var gotQuery string
	mock := &mockApp{
		metaFunc: func(_ context.Context, query string) (string, error) {
			gotQuery = query
			return "lib.js", nil
		},
	}

	got, err := execute(t, mock, "meta", `outputs.main\.js.imports.0.path`)
	require.NoError(t, err)
	assert.Equal(t, `outputs.main\.js.imports.0.path`, gotQuery)
	assert.Equal(t, "lib.js\n", got)

	_, err = execute(t, mock, "meta")
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestCommands_ExportFlag(t *testing.T) {
	var gotDir string
	mock := &mockApp{
		exportFunc: func(_ context.Context, dir string) (*domain.ExportIndex, error) {
			gotDir = dir
			return &domain.ExportIndex{}, nil
		},
	}

	_, err := execute(t, mock, "export", "-o", "out")
	require.NoError(t, err)
	assert.Equal(t, "out", gotDir)
}

func TestCommands_Errors(t *testing.T) {
	simulated := errors.New("simulated error")
	mock := &mockApp{
		depsFunc: func(_ context.Context, _ []string) ([]domain.PathDependencies, error) {
			return nil, simulated
		},
		readFunc: func(_ context.Context, _ string, _ io.Writer) error {
			return domain.ErrFileNotFound
		},
	}

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "deps failure", args: []string{"deps", "main.js"}, wantErr: "simulated error"},
		{name: "cat missing", args: []string{"cat", "nope.js"}, wantErr: domain.ErrFileNotFound.Error()},
		{name: "deps without paths", args: []string{"deps"}, wantErr: "requires at least 1 arg(s)"},
		{name: "cat without path", args: []string{"cat"}, wantErr: "accepts 1 arg(s)"},
		{name: "ls with args", args: []string{"ls", "extra"}, wantErr: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, mock, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
