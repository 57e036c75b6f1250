package reader_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/dbern/markup/internal/reader"
)

func TestChunkReaderCapsReadSize(t *testing.T) {
	data := bytes.Repeat([]byte("a"), 10)
	cr := reader.NewChunkReader(bytes.NewReader(data), 4)

	buf := make([]byte, 10)
	n, err := cr.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
}

func TestChunkReaderOverMemMapFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/doc.html", []byte("<a></a>\n"), 0o644))

	f, err := fs.Open("/doc.html")
	require.NoError(t, err)
	defer f.Close()

	cr := reader.NewChunkReader(f, reader.MaxBuf)
	out, err := io.ReadAll(cr)
	require.NoError(t, err)
	require.Equal(t, "<a></a>\n", string(out))
}
