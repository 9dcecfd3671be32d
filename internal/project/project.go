// Package project inspects Unreal project descriptors (.uproject files).
//
// Only the path is a hard requirement. Descriptor contents are parsed and
// checked against an embedded schema, but problems there are reported as
// warnings because the build tooling is the final judge of a descriptor.
package project

import (
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Aman-CERP/uecheck/internal/errors"
)

// Extension is the project descriptor file extension.
const Extension = ".uproject"

//go:embed uproject.schema.json
var schemaSource string

const schemaURL = "uproject.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}

// Module is a code module declared by the project.
type Module struct {
	Name         string `json:"Name"`
	Type         string `json:"Type,omitempty"`
	LoadingPhase string `json:"LoadingPhase,omitempty"`
}

// Plugin is a plugin reference in the descriptor.
type Plugin struct {
	Name    string `json:"Name"`
	Enabled bool   `json:"Enabled"`
}

// Descriptor holds the fields of a .uproject file uecheck cares about.
type Descriptor struct {
	Path              string   `json:"-"`
	FileVersion       int      `json:"FileVersion"`
	EngineAssociation string   `json:"EngineAssociation,omitempty"`
	Category          string   `json:"Category,omitempty"`
	Description       string   `json:"Description,omitempty"`
	Modules           []Module `json:"Modules,omitempty"`
	Plugins           []Plugin `json:"Plugins,omitempty"`
	TargetPlatforms   []string `json:"TargetPlatforms,omitempty"`
}

// Name returns the project name, the descriptor file name without its
// extension.
func (d Descriptor) Name() string {
	return Name(d.Path)
}

// Name returns the project name for a descriptor path.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Resolve checks that path names an existing .uproject file and returns
// it in absolute form. Failures are input errors.
func Resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.InputError("project descriptor path is empty", nil)
	}
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		return "", errors.InputError(fmt.Sprintf("file must have %s extension: %s", Extension, path), nil).
			WithDetail("path", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.InputError("cannot resolve project path", err).WithDetail("path", path)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.InputError(fmt.Sprintf("%s file not found: %s", Extension, path), err).
			WithDetail("path", abs)
	}
	if info.IsDir() {
		return "", errors.InputError(fmt.Sprintf("%s is a directory: %s", Extension, path), nil).
			WithDetail("path", abs)
	}
	return abs, nil
}

// Inspect resolves path and reads the descriptor. The returned warnings
// cover unreadable JSON, schema violations and a TargetPlatforms list that
// excludes platform. Only path problems produce an error.
func Inspect(path, platform string) (Descriptor, []string, error) {
	abs, err := Resolve(path)
	if err != nil {
		return Descriptor{}, nil, err
	}
	d := Descriptor{Path: abs}

	data, err := os.ReadFile(abs)
	if err != nil {
		return Descriptor{}, nil, errors.InputError("cannot read project descriptor", err).WithDetail("path", abs)
	}

	var warnings []string
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return d, []string{fmt.Sprintf("project descriptor is not valid JSON: %v", err)}, nil
	}
	warnings = append(warnings, schemaWarnings(doc)...)

	// Field-level decode errors are already covered by the schema warnings.
	_ = json.Unmarshal(data, &d)
	d.Path = abs

	if platform != "" && len(d.TargetPlatforms) > 0 && !containsFold(d.TargetPlatforms, platform) {
		warnings = append(warnings, fmt.Sprintf("TargetPlatforms does not include %s (declared: %s)",
			platform, strings.Join(d.TargetPlatforms, ", ")))
	}
	return d, warnings, nil
}

func schemaWarnings(doc any) []string {
	sch, err := compiledSchema()
	if err != nil {
		return []string{fmt.Sprintf("descriptor schema unavailable: %v", err)}
	}
	err = sch.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !stderrors.As(err, &ve) {
		return []string{fmt.Sprintf("project descriptor: %v", err)}
	}
	var out []string
	collectLeaves(ve, &out)
	sort.Strings(out)
	return out
}

func collectLeaves(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, fmt.Sprintf("project descriptor %s: %s", loc, ve.Message))
		return
	}
	for _, c := range ve.Causes {
		collectLeaves(c, out)
	}
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
