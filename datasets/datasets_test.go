package datasets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func newTempResolver(t *testing.T, files ...string) *Resolver {
	r := require.New(t)

	dir := t.TempDir()
	for _, name := range files {
		r.NoError(os.WriteFile(filepath.Join(dir, name), []byte("example"), 0o644))
	}

	resolver, err := NewResolver(dir)
	r.NoError(err)

	return resolver
}

func TestGetBundled(t *testing.T) {
	r := require.New(t)

	path, err := Get("iris.csv")
	r.NoError(err)
	r.True(filepath.IsAbs(path))
	r.Equal(filepath.Join(BasePath(), "iris.csv"), path)
	r.Equal("iris.csv", filepath.Base(path))
	r.FileExists(path)
}

func TestGetExisting(t *testing.T) {
	r := require.New(t)
	resolver := newTempResolver(t, "sample.onnx")

	path, err := resolver.Get("sample.onnx")
	r.NoError(err)
	r.Equal(filepath.Join(resolver.Base(), "sample.onnx"), path)
	r.FileExists(path)
}

func TestGetMissing(t *testing.T) {
	r := require.New(t)
	resolver := newTempResolver(t, "sample.onnx")

	path, err := resolver.Get("missing.csv")
	r.Empty(path)
	r.ErrorIs(err, ErrNotFound)
	r.Contains(err.Error(), "missing.csv")

	_, err = Get("missing.csv")
	r.ErrorIs(err, ErrNotFound)
	r.Contains(err.Error(), "missing.csv")
}

func TestGetEmptyName(t *testing.T) {
	r := require.New(t)
	resolver := newTempResolver(t)

	path, err := resolver.Get("")
	r.NoError(err)
	r.Equal(resolver.Base(), path)
	r.DirExists(path)
}

func TestGetIdempotent(t *testing.T) {
	r := require.New(t)

	first, err := Get("mul_1.json")
	r.NoError(err)
	second, err := Get("mul_1.json")
	r.NoError(err)
	r.Equal(first, second)
}

func TestGetNested(t *testing.T) {
	r := require.New(t)
	resolver := newTempResolver(t)
	r.NoError(os.MkdirAll(filepath.Join(resolver.Base(), "models", "v1"), 0o755))
	r.NoError(os.WriteFile(filepath.Join(resolver.Base(), "models", "v1", "sigmoid.onnx"), nil, 0o644))

	path, err := resolver.Get("models/v1/sigmoid.onnx")
	r.NoError(err)
	r.Equal(filepath.Join(resolver.Base(), "models", "v1", "sigmoid.onnx"), path)

	path, err = resolver.Get("models/../models/v1")
	r.NoError(err)
	r.Equal(resolver.Base()+string(filepath.Separator)+"models/../models/v1", path)

	path, err = resolver.Get("./models/v1")
	r.NoError(err)
	r.Equal(resolver.Base()+string(filepath.Separator)+"./models/v1", path)
}

func TestGetThroughFile(t *testing.T) {
	r := require.New(t)
	resolver := newTempResolver(t, "sample.onnx")

	for _, name := range []string{"sample.onnx/x", "sample.onnx/"} {
		path, err := resolver.Get(name)
		r.Empty(path, name)
		r.ErrorIs(err, ErrNotFound, name)
		r.Contains(err.Error(), name)
	}

	_, err := Get("iris.csv/")
	r.ErrorIs(err, ErrNotFound)
}

func TestGetPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	r := require.New(t)
	resolver := newTempResolver(t)

	locked := filepath.Join(resolver.Base(), "locked")
	r.NoError(os.Mkdir(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	path, err := resolver.Get("locked/x")
	r.Empty(path)
	r.Error(err)
	r.False(errors.Is(err, ErrNotFound))
	r.ErrorIs(err, fs.ErrPermission)
}

func TestGetRejectsEscapingNames(t *testing.T) {
	r := require.New(t)
	resolver := newTempResolver(t)

	for _, name := range []string{"../secret", "models/../../secret", filepath.Join(resolver.Base(), "sample.onnx")} {
		path, err := resolver.Get(name)
		r.Empty(path)
		r.ErrorIs(err, ErrInvalidName, name)
		r.False(errors.Is(err, ErrNotFound), name)
		r.Contains(err.Error(), name)
	}
}

func TestNewResolverRelative(t *testing.T) {
	r := require.New(t)

	resolver, err := NewResolver(".")
	r.NoError(err)
	r.True(filepath.IsAbs(resolver.Base()))

	wd, err := os.Getwd()
	r.NoError(err)
	r.Equal(wd, resolver.Base())
}

func TestNames(t *testing.T) {
	r := require.New(t)

	names, err := Default().Names()
	r.NoError(err)
	r.Equal([]string{"iris.csv", "mul_1.json"}, names)

	resolver := newTempResolver(t, "b.csv", "a.onnx", ".hidden", "helper.go")
	r.NoError(os.Mkdir(filepath.Join(resolver.Base(), "dir"), 0o755))

	names, err = resolver.Names()
	r.NoError(err)
	r.Equal([]string{"a.onnx", "b.csv"}, names)
}

func TestGetConcurrent(t *testing.T) {
	defer goleak.VerifyNone(t)
	r := require.New(t)

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		name := "iris.csv"
		if i%2 == 1 {
			name = "missing.csv"
		}

		g.Go(func() error {
			path, err := Get(name)
			if name == "missing.csv" {
				if !errors.Is(err, ErrNotFound) {
					return errors.New("expected not found for " + name)
				}
				return nil
			}
			if err != nil {
				return err
			}
			if path != filepath.Join(BasePath(), name) {
				return errors.New("unexpected path " + path)
			}
			return nil
		})
	}

	r.NoError(g.Wait())
}
