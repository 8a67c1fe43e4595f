package requests

import "github.com/hackfs/hackfs"

// NodeRequestDTO is the JSON representation of [hackfs.NodeRequest]
type NodeRequestDTO struct {
	Path string                       `json:"path"`
	Type hackfs.NodeCreateRequestType `json:"type"`
	UUID *string                      `json:"uuid,omitempty"` // Optional identity for log correlation
}

// FileRequestDTO is the JSON representation of [hackfs.FileCreateRequest]
type FileRequestDTO struct {
	NodeRequestDTO
	Content *string `json:"content,omitempty"` // Initial content; empty when omitted
}

// DirRequestDTO is the JSON representation of [hackfs.DirCreateRequest]
type DirRequestDTO struct {
	NodeRequestDTO
}
