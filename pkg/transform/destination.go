package transform

import (
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// XSLTNamespace is the XSLT 1.0/2.0/3.0 namespace URI.
const XSLTNamespace = "http://www.w3.org/1999/XSL/Transform"

// OutputExtension returns the file extension matching the stylesheet's
// xsl:output method: ".xml" for xml, ".txt" for text and ".htm" otherwise.
func OutputExtension(stylesheet []byte) string {
	switch outputMethod(stylesheet) {
	case "xml":
		return ".xml"
	case "text":
		return ".txt"
	default:
		return ".htm"
	}
}

// FileFilter returns a save-dialog style filter for the stylesheet's output.
func FileFilter(stylesheet []byte) string {
	switch OutputExtension(stylesheet) {
	case ".xml":
		return "XML files (*.xml)|*.xml|All files (*.*)|*.*"
	case ".txt":
		return "Text files (*.txt)|*.txt|All files (*.*)|*.*"
	default:
		return "HTML files (*.htm;*.html)|*.htm;*.html|All files (*.*)|*.*"
	}
}

func outputMethod(stylesheet []byte) string {
	if len(stylesheet) == 0 {
		return ""
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(stylesheet); err != nil {
		return ""
	}
	root := doc.Root()
	if root == nil {
		return ""
	}
	for _, el := range root.ChildElements() {
		if el.Tag == "output" && el.NamespaceURI() == XSLTNamespace {
			method := strings.TrimSpace(el.SelectAttrValue("method", ""))
			// QName methods like "saxon:xhtml" keep their local part
			if i := strings.LastIndex(method, ":"); i >= 0 {
				method = method[i+1:]
			}
			return strings.ToLower(method)
		}
	}
	return ""
}

// Destination returns where a run should write: the hint when it must be
// honoured, otherwise <documentName>_output<ext> under tempDir.
func Destination(req Request, tempDir string, stylesheet []byte) string {
	if req.HonorsHint() {
		return req.OutputHint
	}
	name := "untitled"
	if req.Document != nil {
		name = req.Document.Name()
	}
	return filepath.Join(tempDir, name+"_output"+OutputExtension(stylesheet))
}
