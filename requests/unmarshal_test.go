package requests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfs/hackfs"
)

func TestGetNodeType(t *testing.T) {
	typ, err := GetNodeType([]byte(`{"type":"file","path":"/a.txt"}`))
	require.NoError(t, err)
	assert.Equal(t, hackfs.FileNodeType, typ)

	typ, err = GetNodeType([]byte(`{"type":"dir","path":"/a"}`))
	require.NoError(t, err)
	assert.Equal(t, hackfs.DirNodeType, typ)
}

func TestGetNodeType_InvalidJSON(t *testing.T) {
	_, err := GetNodeType([]byte(`{`))
	assert.Error(t, err)
}

func TestUnmarshalFileRequest(t *testing.T) {
	req, err := UnmarshalFileRequest([]byte(`{"type":"file","path":"docs/readme.md","content":"Hello World"}`))
	require.NoError(t, err)

	assert.Equal(t, "docs/readme.md", req.Path)
	assert.Equal(t, hackfs.FileNodeType, req.Type)
	assert.Equal(t, "Hello World", req.Content)
}

func TestUnmarshalFileRequest_ContentDefaultsEmpty(t *testing.T) {
	req, err := UnmarshalFileRequest([]byte(`{"type":"file","path":"blank.txt"}`))
	require.NoError(t, err)
	assert.Equal(t, "", req.Content)
}

func TestUnmarshalFileRequest_UUIDDefaulted(t *testing.T) {
	req, err := UnmarshalFileRequest([]byte(`{"type":"file","path":"a.txt"}`))
	require.NoError(t, err)

	require.NotNil(t, req.UUID)
	_, err = uuid.Parse(*req.UUID)
	assert.NoError(t, err, "generated uuid must be valid")
}

func TestUnmarshalFileRequest_UUIDPreserved(t *testing.T) {
	id := uuid.New().String()
	req, err := UnmarshalFileRequest([]byte(`{"type":"file","path":"a.txt","uuid":"` + id + `"}`))
	require.NoError(t, err)

	require.NotNil(t, req.UUID)
	assert.Equal(t, id, *req.UUID)
}

func TestUnmarshalDirRequest(t *testing.T) {
	req, err := UnmarshalDirRequest([]byte(`{"type":"dir","path":"a/b"}`))
	require.NoError(t, err)

	assert.Equal(t, "a/b", req.Path)
	assert.Equal(t, hackfs.DirNodeType, req.Type)
}

func TestUnmarshalDirRequest_InvalidJSON(t *testing.T) {
	_, err := UnmarshalDirRequest([]byte(`not json`))
	assert.Error(t, err)
}
