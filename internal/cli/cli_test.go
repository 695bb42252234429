package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeStub writes an executable shell script standing in for ffmpeg or
// ffprobe and returns its path.
func writeStub(t *testing.T, name, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

// ffmpegOK is a stub that writes a tiny file to the final argument, the
// output path of every encode invocation.
const ffmpegOK = `for a; do out=$a; done
echo webm > "$out"`

// ffprobeOK reports 1024x768 for any probed file.
const ffprobeOK = `case "$*" in
*stream=width*) echo 1024 ;;
*stream=height*) echo 768 ;;
*) exit 1 ;;
esac`

// setupStubs points the converter at stub tools and a fresh output dir,
// returning the output dir.
func setupStubs(t *testing.T, ffmpegScript string) string {
	t.Helper()

	outDir := filepath.Join(t.TempDir(), "webm")
	t.Setenv("FFMPEG_PATH", writeStub(t, "ffmpeg", ffmpegScript))
	t.Setenv("FFPROBE_PATH", writeStub(t, "ffprobe", ffprobeOK))
	t.Setenv("OUTPUT_DIR", outDir)
	t.Setenv("LOG_LEVEL", "error")
	return outDir
}

func TestExecute_MutuallyExclusiveFlags(t *testing.T) {
	setupStubs(t, ffmpegOK)

	code := Execute(context.Background(), []string{"--icon", "a.jpg", "--file", "b.png"})
	assert.Equal(t, ExitUsage, code)
}

func TestExecute_UnknownFlag(t *testing.T) {
	setupStubs(t, ffmpegOK)

	code := Execute(context.Background(), []string{"--bogus"})
	assert.Equal(t, ExitUsage, code)
}

func TestExecute_TooManyArguments(t *testing.T) {
	setupStubs(t, ffmpegOK)

	code := Execute(context.Background(), []string{"dir1", "dir2"})
	assert.Equal(t, ExitUsage, code)
}

func TestExecute_Help(t *testing.T) {
	code := Execute(context.Background(), []string{"--help"})
	assert.Equal(t, ExitOK, code)
}

func TestExecute_SingleSticker(t *testing.T) {
	outDir := setupStubs(t, ffmpegOK)

	dir := t.TempDir()
	input := filepath.Join(dir, "cat.png")
	require.NoError(t, os.WriteFile(input, []byte("img"), 0o600))

	code := Execute(context.Background(), []string{"--file", input})
	assert.Equal(t, ExitOK, code)
	assert.FileExists(t, filepath.Join(outDir, "cat.webm"))
}

func TestExecute_SingleIcon(t *testing.T) {
	outDir := setupStubs(t, ffmpegOK)

	dir := t.TempDir()
	input := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(input, []byte("img"), 0o600))

	code := Execute(context.Background(), []string{"--icon-file", input})
	assert.Equal(t, ExitOK, code)
	assert.FileExists(t, filepath.Join(outDir, "logo_icon.webm"))
}

func TestExecute_MissingInput(t *testing.T) {
	setupStubs(t, ffmpegOK)

	code := Execute(context.Background(), []string{"--file", filepath.Join(t.TempDir(), "missing.jpg")})
	assert.Equal(t, ExitFailure, code)
}

func TestExecute_EmptyBatchIsSuccess(t *testing.T) {
	setupStubs(t, ffmpegOK)

	code := Execute(context.Background(), []string{t.TempDir()})
	assert.Equal(t, ExitOK, code)
}

func TestExecute_BatchDirectory(t *testing.T) {
	outDir := setupStubs(t, ffmpegOK)

	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o600))
	}

	code := Execute(context.Background(), []string{dir})
	assert.Equal(t, ExitOK, code)
	assert.FileExists(t, filepath.Join(outDir, "a.webm"))
	assert.FileExists(t, filepath.Join(outDir, "b.webm"))
}

func TestExecute_EncoderFailureExitsNonZero(t *testing.T) {
	setupStubs(t, `echo 'encoder broke' >&2; exit 1`)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("img"), 0o600))

	code := Execute(context.Background(), []string{dir})
	assert.Equal(t, ExitFailure, code)
}

func TestExecute_OutputOverride(t *testing.T) {
	setupStubs(t, ffmpegOK)

	dir := t.TempDir()
	input := filepath.Join(dir, "cat.png")
	require.NoError(t, os.WriteFile(input, []byte("img"), 0o600))

	custom := filepath.Join(t.TempDir(), "custom-out")
	code := Execute(context.Background(), []string{"--file", input, "-o", custom})
	assert.Equal(t, ExitOK, code)
	assert.FileExists(t, filepath.Join(custom, "cat.webm"))
}

func TestExecute_CancelledContext(t *testing.T) {
	setupStubs(t, ffmpegOK)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("img"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := Execute(ctx, []string{dir})
	assert.Equal(t, ExitFailure, code)
}
