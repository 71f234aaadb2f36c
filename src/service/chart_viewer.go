package service

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

const ViewerAuto = "auto"
const ViewerNone = "none"

type ChartViewerInterface interface {
	Show(path string) error
}

// SystemViewer opens a rendered chart with the desktop image viewer and waits for the launcher to return.
type SystemViewer struct {
	Command string
}

func (s *SystemViewer) Show(path string) error {
	name, args := s.getCommand()
	if name == "" {
		return errors.New(fmt.Sprintf("No image viewer is known for %s", runtime.GOOS))
	}

	cmd := exec.Command(name, append(args, path)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.New(fmt.Sprintf("Viewer [%s] failed: %s %s", name, err.Error(), string(output)))
	}

	return nil
}

func (s *SystemViewer) getCommand() (string, []string) {
	if s.Command != "" && s.Command != ViewerAuto {
		return s.Command, []string{}
	}

	switch runtime.GOOS {
	case "darwin":
		return "open", []string{"-W"}
	case "windows":
		return "cmd", []string{"/C", "start", "/WAIT", ""}
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{}
	}

	return "", []string{}
}

type NoopViewer struct {
}

func (n *NoopViewer) Show(path string) error {
	return nil
}

func NewChartViewer(command string) ChartViewerInterface {
	if command == ViewerNone {
		return &NoopViewer{}
	}

	return &SystemViewer{Command: command}
}
