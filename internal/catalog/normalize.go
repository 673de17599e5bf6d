package catalog

import (
	"fmt"
	"html/template"

	"github.com/catsite/catsite/internal/debug"
	"github.com/catsite/catsite/internal/markup"
	"github.com/catsite/catsite/internal/spdx"
)

// Normalizer prepares a catalogue node tree for rendering.
type Normalizer interface {
	// Normalize walks nodes in order, mutating them in place, and
	// returns the same slice. parent is the enclosing node, nil at the
	// tree root; it is consumed only for reference ID derivation.
	Normalize(nodes []*Node, parent *Node) ([]*Node, error)
}

// TreeNormalizer implements Normalizer over an injected license
// classifier and markup renderer.
type TreeNormalizer struct {
	classifier spdx.Classifier
	renderer   markup.Renderer
}

// NewNormalizer creates a TreeNormalizer.
func NewNormalizer(classifier spdx.Classifier, renderer markup.Renderer) *TreeNormalizer {
	return &TreeNormalizer{
		classifier: classifier,
		renderer:   renderer,
	}
}

// Normalize walks nodes in order, mutating them in place.
// For each node: the type is resolved (absent means application), the
// Comment and Note markup fields are rendered to safe HTML, a missing ID
// is derived from type-specific fields and sanitized, applications get
// their computed FOSS status, and Contents recurse with the node as the
// new parent. Any failure aborts the whole pass.
func (n *TreeNormalizer) Normalize(nodes []*Node, parent *Node) ([]*Node, error) {
	return n.normalize(nodes, parent, nil)
}

func (n *TreeNormalizer) normalize(nodes []*Node, parent *Node, path []string) ([]*Node, error) {
	for _, node := range nodes {
		if err := n.normalizeNode(node, parent, path); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (n *TreeNormalizer) normalizeNode(node *Node, parent *Node, path []string) error {
	// Only the application type can be omitted in the source.
	nodeType := node.Type
	if nodeType == "" {
		nodeType = TypeApplication
	}
	if !nodeType.Valid() {
		return newNormalizeError(UnknownNodeType, string(nodeType), appendCrumb(path, node),
			fmt.Sprintf("unknown node type: %q", string(nodeType)))
	}

	if node.Comment != "" {
		node.Comment = template.HTML(n.renderer.Render(string(node.Comment)))
	}
	if node.Note != "" {
		node.Note = template.HTML(n.renderer.Render(string(node.Note)))
	}

	if node.ID == "" {
		id, err := n.deriveID(node, nodeType, parent, path)
		if err != nil {
			return err
		}
		node.ID = id
	}

	node.Type = nodeType

	if nodeType == TypeApplication {
		foss := n.classifier.IsLicensesFoss(node.Licenses)
		node.IsFoss = &foss
		debug.Debug("[catalog] %s: is_foss=%v (licenses=%v)", node.ID, foss, node.Licenses)
	}

	if len(node.Contents) > 0 {
		children, err := n.normalize(node.Contents, node, append(path, node.ID))
		if err != nil {
			return err
		}
		node.Contents = children
	}

	return nil
}

// deriveID computes and sanitizes the identifier for a node without one.
func (n *TreeNormalizer) deriveID(node *Node, nodeType NodeType, parent *Node, path []string) (string, error) {
	crumb := appendCrumb(path, node)

	var base string
	switch nodeType {
	case TypeFolder:
		if node.Name == "" {
			return "", newNormalizeError(MissingField, string(nodeType), crumb,
				"folder needs a name to derive its id")
		}
		base = node.Name
	case TypeApplication:
		if node.Publisher == "" || node.Name == "" {
			return "", newNormalizeError(MissingField, string(nodeType), crumb,
				"application needs a publisher and a name to derive its id")
		}
		base = node.Publisher + "-" + node.Name
	case TypeReference:
		if parent == nil {
			return "", newNormalizeError(MissingParent, string(nodeType), crumb,
				"reference node at tree root has no parent to derive its id from")
		}
		if node.Publisher == "" || node.Name == "" {
			return "", newNormalizeError(MissingField, string(nodeType), crumb,
				"reference needs a publisher and a name to derive its id")
		}
		base = node.Publisher + "-" + node.Name + "-ref-" + parent.ID
	default:
		return "", newNormalizeError(UnknownNodeType, string(nodeType), crumb,
			fmt.Sprintf("unknown node type: %q", string(nodeType)))
	}

	id := SanitizeID(base)
	if id == "" {
		return "", newNormalizeError(EmptyIdentifier, string(nodeType), crumb,
			fmt.Sprintf("derived id is empty after sanitizing %q", base))
	}
	return id, nil
}

// appendCrumb extends the breadcrumb with the best available handle for
// a node (its id if set, otherwise its name).
func appendCrumb(path []string, node *Node) []string {
	handle := node.ID
	if handle == "" {
		handle = node.Name
	}
	if handle == "" {
		handle = "(unnamed)"
	}
	return append(path, handle)
}
