// Package transform runs XSLT transforms for a loaded document.
//
// An Engine does the actual work. The Invoker is the boundary the viewer
// calls: it applies a timeout, logs the run and turns engine failures into
// TRANSFORM errors. ExecEngine, the default Engine, shells out to an XSLT
// processor such as xsltproc.
//
// The engine decides where the result goes. A Request carries an output hint
// together with two flags; the hint is honoured only when the user chose it
// or the document declared it. Otherwise the result is written to the temp
// directory as <document>_output<ext>.
package transform
