package transform

import (
	"context"
	_ "embed"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/xsltview/pkg/errors"
	"github.com/arthur-debert/xsltview/pkg/fileops"
	"github.com/arthur-debert/xsltview/pkg/filesystem"
	"github.com/arthur-debert/xsltview/pkg/logging"
	"github.com/arthur-debert/xsltview/pkg/paths"
	"github.com/arthur-debert/xsltview/pkg/types"
)

//go:embed embedded/default.xslt
var defaultStylesheet []byte

// DefaultStylesheet returns the stylesheet used when none is given.
func DefaultStylesheet() []byte {
	return append([]byte(nil), defaultStylesheet...)
}

// Placeholders substituted in ExecEngine arguments.
const (
	ArgStylesheet = "{xsl}"
	ArgInput      = "{input}"
	ArgOutput     = "{output}"
)

// DefaultCommand and DefaultArgs run xsltproc.
var (
	DefaultCommand = "xsltproc"
	DefaultArgs    = []string{"-o", ArgOutput, ArgStylesheet, ArgInput}
)

// ExecOptions configures an ExecEngine.
type ExecOptions struct {
	Command string
	Args    []string
	// TempDir receives the serialized input and engine-chosen outputs.
	TempDir string
	FS      types.FS
}

// ExecEngine runs an external XSLT processor.
type ExecEngine struct {
	command string
	args    []string
	tempDir string
	fs      types.FS
}

// NewExecEngine applies defaults to opts.
func NewExecEngine(opts ExecOptions) *ExecEngine {
	e := &ExecEngine{
		command: opts.Command,
		args:    opts.Args,
		tempDir: opts.TempDir,
		fs:      opts.FS,
	}
	if e.command == "" {
		e.command = DefaultCommand
	}
	if len(e.args) == 0 {
		e.args = DefaultArgs
	}
	if e.tempDir == "" {
		e.tempDir = paths.TempDir()
	}
	if e.fs == nil {
		e.fs = filesystem.NewOS()
	}
	return e
}

// Transform writes the document to a temp input, runs the processor and
// returns the output path it was told to write.
func (e *ExecEngine) Transform(ctx context.Context, req Request) (string, error) {
	logger := logging.GetLogger("transform.exec")
	if req.Document == nil {
		return "", errors.New(errors.ErrNoDocument, "no document loaded")
	}

	program := req.Program
	var stylesheet []byte
	if program == "" {
		program = filepath.Join(e.tempDir, "xsltview-default.xslt")
		stylesheet = defaultStylesheet
		logger.Debug().Str("path", program).Msg("Using default stylesheet")
	} else {
		data, err := e.fs.ReadFile(program)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrTransform, "cannot read stylesheet %s", program)
		}
		stylesheet = data
	}

	input := filepath.Join(e.tempDir, req.Document.Name()+"_input.xml")
	data, err := req.Document.Bytes()
	if err != nil {
		return "", err
	}
	output := Destination(req, e.tempDir, stylesheet)

	stage := fileops.New(e.fs, "stage").MkdirAll(e.tempDir, 0755)
	if req.Program == "" {
		stage.WriteFile(program, stylesheet, 0644)
	}
	stage.WriteFile(input, data, 0644).
		MkdirAll(filepath.Dir(output), 0755)

	defer func() {
		if err := fileops.New(e.fs, "cleanup").Remove(input).Run(context.Background()); err != nil {
			logger.Warn().Err(err).Str("path", input).Msg("Failed to remove staged input")
		}
	}()
	if err := stage.Run(ctx); err != nil {
		return "", err
	}

	args := expandArgs(e.args, program, input, output)
	logging.LogCommand(e.command, args)
	out, err := exec.CommandContext(ctx, e.command, args...).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = err.Error()
		}
		return "", errors.Wrapf(err, errors.ErrTransform, "%s: %s", e.command, msg).
			WithDetail("command", e.command).
			WithDetail("args", args)
	}
	if _, err := e.fs.Stat(output); err != nil {
		return "", errors.Wrapf(err, errors.ErrTransform, "%s did not write %s", e.command, output)
	}
	return output, nil
}

func expandArgs(args []string, program, input, output string) []string {
	r := strings.NewReplacer(ArgStylesheet, program, ArgInput, input, ArgOutput, output)
	expanded := make([]string, len(args))
	for i, a := range args {
		expanded[i] = r.Replace(a)
	}
	return expanded
}
