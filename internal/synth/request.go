package synth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aman-CERP/uecheck/internal/errors"
	"github.com/Aman-CERP/uecheck/internal/project"
)

// Request is a validated packaging request. Paths are absolute and the
// output directory exists.
type Request struct {
	ProjectFile string   `json:"project_file"`
	OutputDir   string   `json:"output_dir"`
	Platform    Platform `json:"platform"`
}

// NewRequest validates caller input and prepares the output directory.
// The platform is checked first so an unsupported name never touches the
// filesystem.
func NewRequest(projectFile, outputDir, platform string) (Request, error) {
	p, err := ParsePlatform(platform)
	if err != nil {
		return Request{}, err
	}

	proj, err := project.Resolve(projectFile)
	if err != nil {
		return Request{}, err
	}

	if strings.TrimSpace(outputDir) == "" {
		return Request{}, errors.InputError("output directory is empty", nil)
	}
	out, err := filepath.Abs(outputDir)
	if err != nil {
		return Request{}, errors.InputError("cannot resolve output directory", err).WithDetail("path", outputDir)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return Request{}, errors.InputError(fmt.Sprintf("cannot create output directory: %s", out), err).
			WithDetail("path", out)
	}
	if err := checkWritable(out); err != nil {
		return Request{}, errors.InputError("output directory is not writable", err).WithDetail("path", out)
	}

	return Request{ProjectFile: proj, OutputDir: out, Platform: p}, nil
}

// ProjectName returns the descriptor name without extension.
func (r Request) ProjectName() string {
	return project.Name(r.ProjectFile)
}

// checkWritable creates and removes a scratch file in dir.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".uecheck-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
