package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin", "amd64", "greprep_Darwin_all.tar.gz", false},
		{"darwin", "arm64", "greprep_Darwin_all.tar.gz", false},
		{"linux", "amd64", "greprep_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "greprep_Linux_arm64.tar.gz", false},
		{"linux", "386", "greprep_Linux_i386.tar.gz", false},
		{"windows", "amd64", "greprep_Windows_x86_64.zip", false},
		{"windows", "arm64", "greprep_Windows_arm64.zip", false},
		{"freebsd", "amd64", "", true},
		{"linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	sums := []byte("abc123  greprep_Darwin_all.tar.gz\n" +
		"badline\n" +
		"  \n" +
		"foo  bar  baz\n" +
		"def456  greprep_Linux_x86_64.tar.gz\n")

	got, ok := checksumFor(sums, "greprep_Linux_x86_64.tar.gz")
	require.True(t, ok)
	assert.Equal(t, "def456", got)

	_, ok = checksumFor(sums, "greprep_Windows_x86_64.zip")
	assert.False(t, ok)

	_, ok = checksumFor(nil, "anything")
	assert.False(t, ok)
}

func TestCheckSHA256(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)

	assert.NoError(t, checkSHA256(data, hex.EncodeToString(sum[:])))

	err := checkSHA256(data, "0000000000000000000000000000000000000000000000000000000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestUnpackBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho greprep")

	t.Run("tar.gz", func(t *testing.T) {
		archive := tarGzWith(t, "greprep", content)
		got, err := unpackBinary(archive, "greprep_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := tarGzWith(t, "README.md", content)
		_, err := unpackBinary(archive, "greprep_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "greprep")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	replacement := []byte("new-binary-content")
	digest := sha256.Sum256(replacement)

	require.NoError(t, swapBinary(replacement, target, digest[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	content := []byte("new-greprep-binary")
	archive := tarGzWith(t, "greprep", content)
	sum := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(sum[:])

	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	releaseServer := func(t *testing.T, checksums string) *httptest.Server {
		t.Helper()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/aeroSapphire/greprep/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			case "/aeroSapphire/greprep/releases/download/v2.0.0/" + asset:
				_, _ = w.Write(archive)
			case "/aeroSapphire/greprep/releases/download/v2.0.0/checksums.txt":
				_, _ = w.Write([]byte(checksums))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		t.Cleanup(server.Close)
		return server
	}

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "greprep")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, fmt.Sprintf("%s  %s\n", archiveHex, asset))
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		badSum := "0000000000000000000000000000000000000000000000000000000000000000"
		server := releaseServer(t, fmt.Sprintf("%s  %s\n", badSum, asset))
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/aeroSapphire/greprep/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

func tarGzWith(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
