package models

import "time"

// NodeType distinguishes the two kinds of entries in the notes drive.
type NodeType string

const (
	NodeTypeFolder   NodeType = "folder"
	NodeTypeDocument NodeType = "document"
)

// Node is a single entry in the notes tree: a folder or an uploaded
// document. ParentID is nil for root-level nodes (the API exposes the
// root as an empty parent string). Filename is the storage-side name of
// an uploaded document, distinct from the display Name.
type Node struct {
	ID        string    `json:"id" db:"id"`
	Type      NodeType  `json:"type" db:"type"`
	Name      string    `json:"name" db:"name"`
	ParentID  *string   `json:"parent" db:"parent_id"`
	Filename  string    `json:"filename,omitempty" db:"filename"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsFolder reports whether the node can contain children.
func (n *Node) IsFolder() bool {
	return n.Type == NodeTypeFolder
}
