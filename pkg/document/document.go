package document

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/xsltview/pkg/errors"
	"github.com/arthur-debert/xsltview/pkg/paths"
	"github.com/arthur-debert/xsltview/pkg/types"
	"github.com/beevik/etree"
)

// Processing instruction targets understood by Parse.
const (
	StylesheetPI = "xml-stylesheet"
	OutputPI     = "xsl-output"
)

// pseudoAttr matches name="value" or name='value' inside a processing instruction.
var pseudoAttr = regexp.MustCompile(`([A-Za-z_][\w.\-]*)\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// Document is a loaded XML document and what it declares about its transform.
type Document struct {
	Location      paths.Location
	Tree          *etree.Document
	Stylesheet    string
	DefaultOutput string
}

// Load reads and parses the document at path.
func Load(fsys types.FS, path string) (*Document, error) {
	loc, err := paths.NewLocation(path)
	if err != nil {
		return nil, err
	}
	data, err := fsys.ReadFile(loc.String())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentLoad, "cannot read %s", loc)
	}
	return Parse(data, loc)
}

// Parse builds a Document from raw XML.
func Parse(data []byte, loc paths.Location) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentLoad, "cannot parse %s", loc)
	}
	if tree.Root() == nil {
		return nil, errors.Newf(errors.ErrDocumentLoad, "%s has no root element", loc)
	}

	d := &Document{Location: loc, Tree: tree}
	for _, tok := range tree.Child {
		pi, ok := tok.(*etree.ProcInst)
		if !ok {
			continue
		}
		attrs := parsePseudoAttrs(pi.Inst)
		switch pi.Target {
		case StylesheetPI:
			if d.Stylesheet == "" && isXSLType(attrs["type"]) {
				d.Stylesheet = attrs["href"]
			}
		case OutputPI:
			if d.DefaultOutput == "" {
				d.DefaultOutput = attrs["default"]
			}
		}
	}
	return d, nil
}

// Bytes serializes the current tree.
func (d *Document) Bytes() ([]byte, error) {
	data, err := d.Tree.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot serialize document")
	}
	return data, nil
}

// Name is the document's file name without directory or extension.
func (d *Document) Name() string {
	base := filepath.Base(d.Location.String())
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "untitled"
	}
	return name
}

func parsePseudoAttrs(inst string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range pseudoAttr.FindAllStringSubmatch(inst, -1) {
		v := m[2]
		if v == "" {
			v = m[3]
		}
		attrs[m[1]] = v
	}
	return attrs
}

// isXSLType accepts the media types browsers use for XSLT. A missing type
// is accepted too; CSS stylesheets are not.
func isXSLType(t string) bool {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "", "text/xsl", "text/xml", "application/xml", "application/xslt+xml":
		return true
	}
	return false
}
