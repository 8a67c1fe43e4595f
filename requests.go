package hackfs

// NodeCreateRequestType discriminates seed-definition entries.
type NodeCreateRequestType string

const (
	FileNodeType NodeCreateRequestType = "file"
	DirNodeType  NodeCreateRequestType = "dir"
)

// NodeRequest carries the fields shared by every seed definition.
type NodeRequest struct {
	Path string                `json:"path"`
	Type NodeCreateRequestType `json:"type"`
	UUID *string               `json:"uuid,omitempty"` // Optional identity for log correlation
}

// FileCreateRequest describes a file to create at seed time.
type FileCreateRequest struct {
	NodeRequest
	Content string `json:"content"`
}

// DirCreateRequest describes a directory to create at seed time.
type DirCreateRequest struct {
	NodeRequest
}
