// Package document loads the XML document a view is attached to and
// reports when it changes on disk.
//
// Besides the element tree, two processing instructions are read from the
// document prolog:
//
//	<?xml-stylesheet type="text/xsl" href="report.xsl"?>
//	<?xsl-output default="report.htm"?>
//
// The first names the stylesheet the document wants to be viewed with, the
// second the output location a transform should write to unless the user
// picks one.
package document
