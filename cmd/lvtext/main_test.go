// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestDistanceCmd(t *testing.T) {
	out, _, err := execute(t, "distance", "kitten", "sitting")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, _, err = execute(t, "distance", "intention", "execution", "--sub-cost", "2", "--two-rows")
	require.NoError(t, err)
	assert.Equal(t, "8\n", out)

	_, stderr, err := execute(t, "distance", "a", "b", "--sub-cost=-1")
	require.Error(t, err)
	assert.Contains(t, stderr, "command failed")
}

func TestAlignCmd(t *testing.T) {
	out, _, err := execute(t, "align", "intention", "execution")
	require.NoError(t, err)
	assert.Equal(t, "inten tion\nex ecution\n", out)

	out, _, err = execute(t, "align", "ab", "ba", "--placeholder", "_")
	require.NoError(t, err)
	assert.Equal(t, "ab_\n_ba\n", out)

	_, _, err = execute(t, "align", "a", "b", "--placeholder", "__")
	assert.Error(t, err)
}

func TestSegmentCmd(t *testing.T) {
	t.Setenv(envRedisAddr, "")

	out, _, err := execute(t, "segment", "他特别喜欢北京烤鸭",
		"--word", "他", "--word", "特别", "--word", "喜欢", "--word", "北京烤鸭")
	require.NoError(t, err)
	assert.Equal(t, "他 特别 喜欢 北京烤鸭\n", out)

	path := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte("他\n特别\n"), 0o600))
	out, stderr, err := execute(t, "segment", "他特别喜欢", "--dict", path, "--log-level", "info")
	require.NoError(t, err)
	assert.Equal(t, "他 特别 喜 欢\n", out)
	assert.Contains(t, stderr, "dictionary loaded")

	_, _, err = execute(t, "segment", "abc")
	assert.ErrorIs(t, err, errNoDictionary)
}

func TestWERCmd(t *testing.T) {
	out, _, err := execute(t, "wer",
		"we can only see a short distance ahead",
		"we canon l y see ash ort distance ahead",
		"--report")
	require.NoError(t, err)
	assert.Equal(t, "wer=0.6250 accuracy=0.3750\nsubstitutions=4 insertions=1 deletions=0 reference_words=8\n", out)

	_, _, err = execute(t, "wer", "", "x")
	assert.Error(t, err)
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := execute(t, "distance", "a", "b", "--log-level", "loud")
	assert.Error(t, err)
}
