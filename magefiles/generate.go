package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	framesInput  = "frames.yaml"
	framesOutput = "pkg/spatial/frames_gen.go"
)

// frameDef is one entry in frames.yaml.
type frameDef struct {
	Name    string `yaml:"name"`    // Exported Go type name.
	Display string `yaml:"display"` // FrameName() return value.
	Doc     string `yaml:"doc"`     // Doc comment body, following the type name.
}

// framesFile is the top-level structure of frames.yaml.
type framesFile struct {
	Frames []frameDef `yaml:"frames"`
}

// Generate regenerates pkg/spatial/frames_gen.go from frames.yaml. Each
// entry becomes a zero-size frame tag type satisfying the spatial.Frame
// constraint.
func Generate() error {
	data, err := os.ReadFile(framesInput)
	if err != nil {
		return fmt.Errorf("read %s: %w", framesInput, err)
	}

	var ff framesFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return fmt.Errorf("parse %s: %w", framesInput, err)
	}
	if len(ff.Frames) == 0 {
		return fmt.Errorf("%s declares no frames", framesInput)
	}
	for _, f := range ff.Frames {
		if f.Name == "" || f.Display == "" {
			return fmt.Errorf("%s: every frame needs name and display", framesInput)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by mage generate from frames.yaml. DO NOT EDIT.\n\n")
	buf.WriteString("package spatial\n")

	for _, f := range ff.Frames {
		fmt.Fprintf(&buf, "\n// %s %s\n", f.Name, f.Doc)
		fmt.Fprintf(&buf, "type %s struct{}\n\n", f.Name)
		buf.WriteString("// FrameName returns the display name of the frame.\n")
		fmt.Fprintf(&buf, "func (%s) FrameName() string { return %q }\n", f.Name, f.Display)
	}

	buf.WriteString("\n// FrameNames lists the display names of the generated frames, in\n")
	buf.WriteString("// declaration order.\n")
	buf.WriteString("func FrameNames() []string {\n\treturn []string{\n")
	for _, f := range ff.Frames {
		fmt.Fprintf(&buf, "\t\t%s{}.FrameName(),\n", f.Name)
	}
	buf.WriteString("\t}\n}\n")

	return os.WriteFile(framesOutput, buf.Bytes(), 0o644)
}
