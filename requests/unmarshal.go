package requests

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/hackfs/hackfs"
	"github.com/hackfs/hackfs/internal/util"
)

// GetNodeType extracts the node type from JSON without full unmarshaling
func GetNodeType(data []byte) (hackfs.NodeCreateRequestType, error) {
	var meta struct {
		Type hackfs.NodeCreateRequestType `json:"type"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return "", err
	}
	return meta.Type, nil
}

// UnmarshalFileRequest handles file-specific unmarshaling with content
func UnmarshalFileRequest(data []byte) (*hackfs.FileCreateRequest, error) {
	var dto FileRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}

	return &hackfs.FileCreateRequest{
		NodeRequest: convertNodeDTO(dto.NodeRequestDTO),
		Content:     valueOrDefault(dto.Content, ""),
	}, nil
}

// UnmarshalDirRequest handles explicit directory unmarshaling (no content)
func UnmarshalDirRequest(data []byte) (*hackfs.DirCreateRequest, error) {
	var dto DirRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}

	return &hackfs.DirCreateRequest{
		NodeRequest: convertNodeDTO(dto.NodeRequestDTO),
	}, nil
}

// convertNodeDTO converts the shared DTO fields to the core type with
// defaults applied
func convertNodeDTO(dto NodeRequestDTO) hackfs.NodeRequest {
	return hackfs.NodeRequest{
		Path: dto.Path,
		Type: dto.Type,
		UUID: util.Pointer(valueOrDefault(dto.UUID, uuid.New().String())),
	}
}

func valueOrDefault[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}
