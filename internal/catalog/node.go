// Package catalog defines the content-catalogue node tree and the
// normalization pass that prepares it for rendering.
package catalog

import "html/template"

// NodeType identifies the variant of a catalogue node.
type NodeType string

const (
	// TypeFolder is a grouping node; its Contents hold child nodes.
	TypeFolder NodeType = "folder"
	// TypeApplication is a software entry with publisher and licenses.
	TypeApplication NodeType = "application"
	// TypeReference is a cross-reference to an application elsewhere in the tree.
	TypeReference NodeType = "reference"
)

// Valid reports whether the type is one of the three known variants.
func (t NodeType) Valid() bool {
	switch t {
	case TypeFolder, TypeApplication, TypeReference:
		return true
	}
	return false
}

// Node is one entry in the content catalogue tree.
//
// Nodes are parsed from the YAML catalogue file and then mutated in place
// by the normalizer: Type is resolved, ID is derived when absent, Comment
// and Note are replaced with rendered safe HTML, applications get IsFoss,
// and Contents are normalized recursively. After normalization the tree
// is owned by the render pipeline and is not mutated again.
type Node struct {
	// ID is the stable identifier, provided in the source or derived
	// during normalization.
	ID string `yaml:"id,omitempty"`
	// Type is the node variant; empty in the source means application.
	Type NodeType `yaml:"type,omitempty"`
	// Name is the display name.
	Name string `yaml:"name,omitempty"`
	// Publisher is the publishing entity (applications and references).
	Publisher string `yaml:"publisher,omitempty"`
	// Licenses is the ordered list of license identifiers or the
	// FOSS/Proprietary sentinels (applications only).
	Licenses []string `yaml:"licenses,omitempty"`
	// Comment is freeform markup text; holds rendered safe HTML after
	// normalization.
	Comment template.HTML `yaml:"comment,omitempty"`
	// Note is freeform markup text; holds rendered safe HTML after
	// normalization.
	Note template.HTML `yaml:"note,omitempty"`
	// Contents are the child nodes, in display order.
	Contents []*Node `yaml:"contents,omitempty"`

	// IsFoss is the computed license status. Set during normalization,
	// and only for application nodes; never read from the source.
	IsFoss *bool `yaml:"-"`
}

// Foss reports the computed license status. It is false when the status
// was never computed (non-application nodes). Convenient in templates,
// where a *bool is truthy whenever it is non-nil.
func (n *Node) Foss() bool {
	return n.IsFoss != nil && *n.IsFoss
}
