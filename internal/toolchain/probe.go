package toolchain

import (
	"os/exec"
)

// Probe is the outcome of looking up one program on PATH.
type Probe struct {
	Program  string
	Path     string
	Required bool
	Err      error
}

// Found reports whether the program was located.
func (p Probe) Found() bool {
	return p.Err == nil
}

// LookPathFunc matches exec.LookPath; tests substitute it.
type LookPathFunc func(file string) (string, error)

// ProbePrograms looks up meson and ninja (required) and git (optional).
func ProbePrograms(lookPath LookPathFunc, programs Programs, vcs string) []Probe {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	wanted := []struct {
		name     string
		required bool
	}{
		{programs.Meson, true},
		{programs.Ninja, true},
		{vcs, false},
	}

	probes := make([]Probe, 0, len(wanted))
	for _, w := range wanted {
		path, err := lookPath(w.name)
		probes = append(probes, Probe{Program: w.name, Path: path, Required: w.required, Err: err})
	}
	return probes
}
