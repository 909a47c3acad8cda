package local_test

import (
	"context"
	"registry/pkg/files"
	"registry/pkg/files/local"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocal_Lifecycle(t *testing.T) {
	ctx := context.Background()
	l, err := local.New(t.TempDir())
	require.NoError(t, err)

	p, err := l.Save(ctx, files.KindPerfil, 7, "my photo.png", []byte("png-bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(p, "perfil/7/"))
	require.True(t, strings.HasSuffix(p, "-my_photo.png"))

	exists, err := l.Exists(ctx, p)
	require.NoError(t, err)
	require.True(t, exists)

	data, err := l.Read(ctx, p)
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)

	deleted, err := l.Delete(ctx, p)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = l.Delete(ctx, p)
	require.NoError(t, err)
	require.False(t, deleted)

	exists, err = l.Exists(ctx, p)
	require.NoError(t, err)
	require.False(t, exists)

	_, err = l.Read(ctx, p)
	require.Error(t, err)
}

func TestLocal_RejectsEscapingPaths(t *testing.T) {
	ctx := context.Background()
	l, err := local.New(t.TempDir())
	require.NoError(t, err)

	_, err = l.Read(ctx, "../outside")
	require.ErrorIs(t, err, files.ErrInvalidPath)
	_, err = l.Delete(ctx, "/etc/passwd")
	require.ErrorIs(t, err, files.ErrInvalidPath)
	_, err = l.Exists(ctx, "")
	require.ErrorIs(t, err, files.ErrInvalidPath)
}

func TestLocal_DirectoriesAreNotFiles(t *testing.T) {
	ctx := context.Background()
	l, err := local.New(t.TempDir())
	require.NoError(t, err)

	_, err = l.Save(ctx, files.KindPerfil, 1, "a.png", []byte("x"))
	require.NoError(t, err)

	exists, err := l.Exists(ctx, "perfil/1")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestNew_EmptyRoot(t *testing.T) {
	_, err := local.New("")
	require.Error(t, err)
}
